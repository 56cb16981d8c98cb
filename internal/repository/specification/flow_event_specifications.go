package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByEventType struct {
	EventType string
}

func (s ByEventType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_type = ?", s.EventType)
}

type ByEventCategory struct {
	Category string
}

func (s ByEventCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type OccurredAfter struct {
	Since time.Time
}

func (s OccurredAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("occurred_at >= ?", s.Since)
}
