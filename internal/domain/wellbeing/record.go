package wellbeing

// DailyRecord is one day of passive-sensing measurements for one user. Activity columns
// (on_bike, on_foot, running, still) are fractions of the day; durations are seconds,
// screen time is minutes.
type DailyRecord struct {
	Date                        string  `json:"date"`
	OnBike                      float64 `json:"on_bike"`
	OnFoot                      float64 `json:"on_foot"`
	Running                     float64 `json:"running"`
	Still                       float64 `json:"still"`
	UserID                      string  `json:"user_id"`
	ConversationCount           float64 `json:"conversation_count"`
	TotalConversationDuration   float64 `json:"total_conversation_duration"`
	AverageConversationDuration float64 `json:"average_conversation_duration"`
	MaxConversationDuration     float64 `json:"max_conversation_duration"`
	MinConversationDuration     float64 `json:"min_conversation_duration"`
	TotalDarkTime               float64 `json:"total_dark_time"`
	AvgDarkTime                 float64 `json:"avg_dark_time"`
	MaxDarkTime                 float64 `json:"max_dark_time"`
	ScreenTimeTotal             float64 `json:"screen_time_total"`
	ScreenSessions              float64 `json:"screen_sessions"`
	MaxScreenTime               float64 `json:"max_screen_time"`
	AvgScreenTime               float64 `json:"avg_screen_time"`
	Hour                        float64 `json:"hour"`
	Rate                        float64 `json:"rate"`
	Hour3DayAvg                 float64 `json:"hour_3day_avg"`
	Rate3DayAvg                 float64 `json:"rate_3day_avg"`
	HourMapped                  float64 `json:"hour_mapped"`
	RateRounded                 float64 `json:"rate_rounded"`
	StressLevel                 float64 `json:"stress_level"`
	Stress3DayAvg               float64 `json:"stress_3day_avg"`
	AppUsage                    float64 `json:"app_usage"`
	TotalDistanceKm             float64 `json:"total_distance_km"`
	UniqueLocations             float64 `json:"unique_locations"`
}

const (
	ColumnDate   = "date"
	ColumnUserID = "user_id"
)

// Columns is the CSV header in file order.
var Columns = []string{
	"date", "on_bike", "on_foot", "running", "still", "user_id",
	"conversation_count", "total_conversation_duration", "average_conversation_duration",
	"max_conversation_duration", "min_conversation_duration",
	"total_dark_time", "avg_dark_time", "max_dark_time",
	"screen_time_total", "screen_sessions", "max_screen_time", "avg_screen_time",
	"hour", "rate", "hour_3day_avg", "rate_3day_avg", "hour_mapped", "rate_rounded",
	"stress_level", "stress_3day_avg", "app_usage", "total_distance_km", "unique_locations",
}

// NumericField returns a pointer to the numeric column called name, or nil for unknown
// names and for the two string columns.
func (r *DailyRecord) NumericField(name string) *float64 {
	switch name {
	case "on_bike":
		return &r.OnBike
	case "on_foot":
		return &r.OnFoot
	case "running":
		return &r.Running
	case "still":
		return &r.Still
	case "conversation_count":
		return &r.ConversationCount
	case "total_conversation_duration":
		return &r.TotalConversationDuration
	case "average_conversation_duration":
		return &r.AverageConversationDuration
	case "max_conversation_duration":
		return &r.MaxConversationDuration
	case "min_conversation_duration":
		return &r.MinConversationDuration
	case "total_dark_time":
		return &r.TotalDarkTime
	case "avg_dark_time":
		return &r.AvgDarkTime
	case "max_dark_time":
		return &r.MaxDarkTime
	case "screen_time_total":
		return &r.ScreenTimeTotal
	case "screen_sessions":
		return &r.ScreenSessions
	case "max_screen_time":
		return &r.MaxScreenTime
	case "avg_screen_time":
		return &r.AvgScreenTime
	case "hour":
		return &r.Hour
	case "rate":
		return &r.Rate
	case "hour_3day_avg":
		return &r.Hour3DayAvg
	case "rate_3day_avg":
		return &r.Rate3DayAvg
	case "hour_mapped":
		return &r.HourMapped
	case "rate_rounded":
		return &r.RateRounded
	case "stress_level":
		return &r.StressLevel
	case "stress_3day_avg":
		return &r.Stress3DayAvg
	case "app_usage":
		return &r.AppUsage
	case "total_distance_km":
		return &r.TotalDistanceKm
	case "unique_locations":
		return &r.UniqueLocations
	default:
		return nil
	}
}

// Value reads a numeric column by name.
func (r DailyRecord) Value(name string) (float64, bool) {
	p := r.NumericField(name)
	if p == nil {
		return 0, false
	}
	return *p, true
}
