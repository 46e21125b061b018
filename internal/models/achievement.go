package models

import (
	"time"

	"github.com/google/uuid"
)

// achievement type
const (
	AchievementTypeEvent     = "event"
	AchievementTypeAward     = "award"
	AchievementTypeMilestone = "milestone"
	AchievementTypeOther     = "other"
)

// Achievement is an append-only record, minted from an archived event
// or authored manually by an administrator
type Achievement struct {
	ID          uuid.UUID
	Title       string
	Description string
	Date        *time.Time
	Image       string
	Type        string
	SourceEvent *uuid.UUID
	IsManual    bool
	CreatedAt   time.Time
}
