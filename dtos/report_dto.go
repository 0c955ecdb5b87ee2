// Copyright (C) 2025 Phoenix Security Collective
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies the impact of a vulnerability report. The enum is
// closed - everything else is rejected at the submission boundary.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ModerationState is the lifecycle state of a moderated record (vulnerability
// reports and event registrations share the same lifecycle).
type ModerationState string

const (
	StatePending  ModerationState = "pending"
	StateApproved ModerationState = "approved"
	StateRejected ModerationState = "rejected"
)

// Terminal reports whether no further transition is allowed from the state.
func (s ModerationState) Terminal() bool {
	return s == StateApproved || s == StateRejected
}

type ModerationDecision string

const (
	DecisionApprove ModerationDecision = "approve"
	DecisionReject  ModerationDecision = "reject"
)

type ReportCreateDTO struct {
	HunterID           uuid.UUID `json:"hunterId" validate:"required"`
	Target             string    `json:"target" validate:"required"`
	TargetType         string    `json:"targetType" validate:"required"`
	VulnerabilityClass string    `json:"vulnerabilityClass" validate:"required"`
	Description        string    `json:"description" validate:"required"`
	Severity           Severity  `json:"severity" validate:"required,oneof=low medium high critical"`
}

type ReportDTO struct {
	ID                 uuid.UUID       `json:"id"`
	HunterID           uuid.UUID       `json:"hunterId"`
	Target             string          `json:"target"`
	TargetType         string          `json:"targetType"`
	VulnerabilityClass string          `json:"vulnerabilityClass"`
	Description        string          `json:"description"`
	Severity           Severity        `json:"severity"`
	Status             ModerationState `json:"status"`
	PointsAwarded      int             `json:"pointsAwarded"`
	CreatedAt          time.Time       `json:"createdAt"`
	DecidedAt          *time.Time      `json:"decidedAt"`
}

type ModerationRequestDTO struct {
	Decision ModerationDecision `json:"decision" validate:"required,oneof=approve reject"`
}

type ModerationEventDTO struct {
	ID            uuid.UUID          `json:"id"`
	ReportID      uuid.UUID          `json:"reportId"`
	HunterID      uuid.UUID          `json:"hunterId"`
	Decision      ModerationDecision `json:"decision"`
	PointsAwarded int                `json:"pointsAwarded"`
	ActorID       uuid.UUID          `json:"actorId"`
	CreatedAt     time.Time          `json:"createdAt"`
}
