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

package statemachine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/scoring"
	"github.com/stretchr/testify/assert"
)

func pendingReport(severity dtos.Severity) models.Report {
	return models.Report{
		Model:              models.Model{ID: uuid.New()},
		HunterID:           uuid.New(),
		Target:             "portal.example.com",
		TargetType:         "web",
		VulnerabilityClass: "xss",
		Description:        "reflected xss in the search box",
		Severity:           severity,
		Status:             dtos.StatePending,
	}
}

func TestDecide(t *testing.T) {
	actorID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should award the severity points on approval", func(t *testing.T) {
		report := pendingReport(dtos.SeverityHigh)

		decided, event, err := Decide(report, dtos.DecisionApprove, actorID, now)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StateApproved, decided.Status)
		assert.Equal(t, 200, decided.PointsAwarded)
		assert.Equal(t, now, *decided.DecidedAt)
		assert.Equal(t, actorID, *decided.DecidedBy)

		assert.Equal(t, report.ID, event.ReportID)
		assert.Equal(t, report.HunterID, event.HunterID)
		assert.Equal(t, dtos.DecisionApprove, event.Decision)
		assert.Equal(t, 200, event.PointsAwarded)
		assert.Equal(t, actorID, event.ActorID)
	})

	t.Run("should keep zero points on rejection", func(t *testing.T) {
		report := pendingReport(dtos.SeverityCritical)

		decided, event, err := Decide(report, dtos.DecisionReject, actorID, now)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StateRejected, decided.Status)
		assert.Equal(t, 0, decided.PointsAwarded)
		assert.Equal(t, 0, event.PointsAwarded)
		assert.Equal(t, dtos.DecisionReject, event.Decision)
	})

	t.Run("should never touch the submission fields", func(t *testing.T) {
		report := pendingReport(dtos.SeverityLow)

		decided, _, err := Decide(report, dtos.DecisionApprove, actorID, now)
		assert.NoError(t, err)
		assert.Equal(t, report.HunterID, decided.HunterID)
		assert.Equal(t, report.Target, decided.Target)
		assert.Equal(t, report.TargetType, decided.TargetType)
		assert.Equal(t, report.VulnerabilityClass, decided.VulnerabilityClass)
		assert.Equal(t, report.Description, decided.Description)
		assert.Equal(t, report.Severity, decided.Severity)
	})

	t.Run("should reject a second decision on an approved report", func(t *testing.T) {
		report := pendingReport(dtos.SeverityMedium)

		approved, _, err := Decide(report, dtos.DecisionApprove, actorID, now)
		assert.NoError(t, err)

		_, _, err = Decide(approved, dtos.DecisionReject, actorID, now)
		assert.ErrorIs(t, err, ErrAlreadyModerated)

		_, _, err = Decide(approved, dtos.DecisionApprove, actorID, now)
		assert.ErrorIs(t, err, ErrAlreadyModerated)
	})

	t.Run("should reject a second decision on a rejected report", func(t *testing.T) {
		report := pendingReport(dtos.SeverityMedium)

		rejected, _, err := Decide(report, dtos.DecisionReject, actorID, now)
		assert.NoError(t, err)

		_, _, err = Decide(rejected, dtos.DecisionApprove, actorID, now)
		assert.ErrorIs(t, err, ErrAlreadyModerated)
	})

	t.Run("should reject an unknown decision and leave the report untouched", func(t *testing.T) {
		report := pendingReport(dtos.SeverityLow)

		decided, _, err := Decide(report, dtos.ModerationDecision("escalate"), actorID, now)
		assert.ErrorIs(t, err, ErrUnknownDecision)
		assert.Equal(t, dtos.StatePending, decided.Status)
		assert.Equal(t, 0, decided.PointsAwarded)
	})

	t.Run("should surface an invalid severity instead of approving with zero points", func(t *testing.T) {
		report := pendingReport(dtos.Severity("absurd"))

		_, _, err := Decide(report, dtos.DecisionApprove, actorID, now)
		assert.ErrorIs(t, err, scoring.ErrInvalidSeverity)
	})
}

func TestDecideRegistration(t *testing.T) {
	actorID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should approve a pending registration", func(t *testing.T) {
		registration := models.EventRegistration{
			Model:    models.Model{ID: uuid.New()},
			EventID:  uuid.New(),
			HunterID: uuid.New(),
			Status:   dtos.StatePending,
		}

		decided, err := DecideRegistration(registration, dtos.DecisionApprove, actorID, now)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StateApproved, decided.Status)
		assert.Equal(t, now, *decided.DecidedAt)
		assert.Equal(t, actorID, *decided.DecidedBy)
	})

	t.Run("should reject a second decision", func(t *testing.T) {
		registration := models.EventRegistration{
			Model:  models.Model{ID: uuid.New()},
			Status: dtos.StateRejected,
		}

		_, err := DecideRegistration(registration, dtos.DecisionApprove, actorID, now)
		assert.ErrorIs(t, err, ErrAlreadyModerated)
	})

	t.Run("should reject an unknown decision", func(t *testing.T) {
		registration := models.EventRegistration{
			Model:  models.Model{ID: uuid.New()},
			Status: dtos.StatePending,
		}

		_, err := DecideRegistration(registration, dtos.ModerationDecision("waitlist"), actorID, now)
		assert.ErrorIs(t, err, ErrUnknownDecision)
	})
}
