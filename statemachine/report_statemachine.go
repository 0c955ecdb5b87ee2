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

// Package statemachine owns the moderation lifecycle rules. The functions are
// pure: they validate the transition and return the updated record plus its
// audit event, persistence happens elsewhere.
package statemachine

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/scoring"
	"github.com/phxsec/phoenixportal/utils"
)

var (
	// ErrAlreadyModerated guards the at-most-once property: a decided record
	// is terminal, a second decision is rejected, never silently ignored and
	// never double-applied.
	ErrAlreadyModerated = errors.New("record has already been moderated")
	ErrUnknownDecision  = errors.New("unknown moderation decision")
)

// Decide validates the pending -> terminal transition for a report and
// applies the decision. On approval the points for the report severity are
// fixed onto the report; submission fields are never touched. The returned
// ModerationEvent must be persisted in the same unit of work as the report.
func Decide(report models.Report, decision dtos.ModerationDecision, actorID uuid.UUID, now time.Time) (models.Report, models.ModerationEvent, error) {
	if report.Status.Terminal() {
		return report, models.ModerationEvent{}, ErrAlreadyModerated
	}

	switch decision {
	case dtos.DecisionApprove:
		points, err := scoring.PointsFor(report.Severity)
		if err != nil {
			return report, models.ModerationEvent{}, err
		}
		report.Status = dtos.StateApproved
		report.PointsAwarded = points
	case dtos.DecisionReject:
		report.Status = dtos.StateRejected
	default:
		return report, models.ModerationEvent{}, ErrUnknownDecision
	}

	report.DecidedAt = utils.Ptr(now)
	report.DecidedBy = utils.Ptr(actorID)

	event := models.ModerationEvent{
		ReportID:      report.ID,
		HunterID:      report.HunterID,
		Decision:      decision,
		PointsAwarded: report.PointsAwarded,
		ActorID:       actorID,
	}
	return report, event, nil
}

// DecideRegistration applies the same lifecycle to an event registration.
// Registrations award no points; the capacity check happens in the
// transaction that persists the transition.
func DecideRegistration(registration models.EventRegistration, decision dtos.ModerationDecision, actorID uuid.UUID, now time.Time) (models.EventRegistration, error) {
	if registration.Status.Terminal() {
		return registration, ErrAlreadyModerated
	}

	switch decision {
	case dtos.DecisionApprove:
		registration.Status = dtos.StateApproved
	case dtos.DecisionReject:
		registration.Status = dtos.StateRejected
	default:
		return registration, ErrUnknownDecision
	}

	registration.DecidedAt = utils.Ptr(now)
	registration.DecidedBy = utils.Ptr(actorID)
	return registration, nil
}
