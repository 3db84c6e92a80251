package tracking

import "time"

// Metric is one stored dashboard snapshot. Durations are minutes, noise is dB.
type Metric struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               int64     `gorm:"not null;index;column:user_id" json:"userId"`
	Date                 time.Time `gorm:"not null;index;column:date" json:"date"`
	MentalScore          float64   `gorm:"column:mental_score" json:"mentalScore"`
	PhysicalActivity     float64   `gorm:"column:physical_activity" json:"physicalActivity"`
	PhysicalActivityGoal float64   `gorm:"column:physical_activity_goal" json:"physicalActivityGoal"`
	Sleep                float64   `gorm:"column:sleep" json:"sleep"`
	SleepGoal            float64   `gorm:"column:sleep_goal" json:"sleepGoal"`
	ScreenTime           float64   `gorm:"column:screen_time" json:"screenTime"`
	ScreenTimeGoal       float64   `gorm:"column:screen_time_goal" json:"screenTimeGoal"`
	AmbientNoise         float64   `gorm:"column:ambient_noise" json:"ambientNoise"`
	AmbientNoiseGoal     float64   `gorm:"column:ambient_noise_goal" json:"ambientNoiseGoal"`
}

func (Metric) TableName() string { return "metric" }
