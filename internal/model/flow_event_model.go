package model

import (
	"time"

	"github.com/google/uuid"
)

type FlowEvent struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   string    `gorm:"type:varchar(64);not null;index"`
	Category    string    `gorm:"type:varchar(32);index"`
	EventType   string    `gorm:"type:varchar(32);not null;index"`
	Filters     string    `gorm:"type:text"`
	AnswerCount int       `gorm:"not null;default:0"`
	OccurredAt  time.Time `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (FlowEvent) TableName() string {
	return "flow_events"
}
