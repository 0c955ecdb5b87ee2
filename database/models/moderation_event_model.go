package models

import (
	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/dtos"
)

// ModerationEvent is the audit record of a single moderation decision. It is
// written in the same transaction as the status transition it documents.
type ModerationEvent struct {
	Model
	ReportID      uuid.UUID               `json:"reportId" gorm:"type:uuid;not null;index"`
	HunterID      uuid.UUID               `json:"hunterId" gorm:"type:uuid;not null"`
	Decision      dtos.ModerationDecision `json:"decision" gorm:"type:text;not null"`
	PointsAwarded int                     `json:"pointsAwarded" gorm:"not null;default:0"`
	ActorID       uuid.UUID               `json:"actorId" gorm:"type:uuid;not null"`
}

func (e ModerationEvent) TableName() string {
	return "moderation_events"
}
