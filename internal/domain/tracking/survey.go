package tracking

import "time"

// SurveyResponse is a daily check-in. UserID is kept as the string the client submitted;
// lookups by numeric user id compare against its decimal form.
type SurveyResponse struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           string    `gorm:"not null;index;column:user_id" json:"userId"`
	Date             time.Time `gorm:"not null;index;column:date" json:"date"`
	Mood             string    `gorm:"column:mood" json:"mood"`
	StressLevel      float64   `gorm:"column:stress_level" json:"stressLevel"`
	Notes            *string   `gorm:"column:notes" json:"notes,omitempty"`
	OverallMood      *int      `gorm:"column:overall_mood" json:"overallMood,omitempty"`
	SleepQuality     *int      `gorm:"column:sleep_quality" json:"sleepQuality,omitempty"`
	Overwhelmed      *string   `gorm:"column:overwhelmed" json:"overwhelmed,omitempty"`
	SocialConnection *int      `gorm:"column:social_connection" json:"socialConnection,omitempty"`
	Completed        bool      `gorm:"not null;default:false;column:completed" json:"completed"`
}

func (SurveyResponse) TableName() string { return "survey_response" }

// SurveyPatch carries the fields of a partial survey update; nil means "leave unchanged".
type SurveyPatch struct {
	UserID      *string
	Mood        *string
	StressLevel *float64
	Notes       *string
}

func (p SurveyPatch) Empty() bool {
	return p.UserID == nil && p.Mood == nil && p.StressLevel == nil && p.Notes == nil
}

// Apply merges the patch into s in place.
func (p SurveyPatch) Apply(s *SurveyResponse) {
	if s == nil {
		return
	}
	if p.UserID != nil {
		s.UserID = *p.UserID
	}
	if p.Mood != nil {
		s.Mood = *p.Mood
	}
	if p.StressLevel != nil {
		s.StressLevel = *p.StressLevel
	}
	if p.Notes != nil {
		notes := *p.Notes
		s.Notes = &notes
	}
}

// Columns returns the patch as a gorm column update map.
func (p SurveyPatch) Columns() map[string]any {
	out := map[string]any{}
	if p.UserID != nil {
		out["user_id"] = *p.UserID
	}
	if p.Mood != nil {
		out["mood"] = *p.Mood
	}
	if p.StressLevel != nil {
		out["stress_level"] = *p.StressLevel
	}
	if p.Notes != nil {
		out["notes"] = *p.Notes
	}
	return out
}
