package ai

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AICallLog records one remote enrichment call. Request holds the summary prompt, Response the
// decoded JSON (or null on failure).
type AICallLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string         `gorm:"not null;index;column:user_id" json:"user_id"`
	Provider  string         `gorm:"column:provider" json:"provider"`
	Model     string         `gorm:"column:model" json:"model"`
	Status    string         `gorm:"column:status" json:"status"`
	Error     string         `gorm:"column:error" json:"error,omitempty"`
	LatencyMs int64          `gorm:"column:latency_ms" json:"latency_ms"`
	Request   datatypes.JSON `gorm:"column:request" json:"request"`
	Response  datatypes.JSON `gorm:"column:response" json:"response"`
	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
}

func (AICallLog) TableName() string { return "ai_call_log" }
