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

package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/statemachine"
	"github.com/stretchr/testify/assert"
)

func setupModeration(t *testing.T) (*ModerationService, *fakeReportRepository, *fakeHunterRepository, *fakeModerationEventRepository, *fakeBroker, models.Hunter) {
	t.Helper()

	reportRepository := newFakeReportRepository()
	hunterRepository := newFakeHunterRepository()
	eventRepository := &fakeModerationEventRepository{}
	broker := &fakeBroker{}

	hunter := models.Hunter{Username: "blaze", Rank: "Ember Hunter"}
	err := hunterRepository.Create(nil, &hunter)
	assert.NoError(t, err)

	service := NewModerationService(reportRepository, hunterRepository, eventRepository, broker)
	return service, reportRepository, hunterRepository, eventRepository, broker, hunter
}

func submitPending(t *testing.T, reportRepository *fakeReportRepository, hunterID uuid.UUID, severity dtos.Severity) models.Report {
	t.Helper()
	report := models.Report{
		HunterID: hunterID,
		Severity: severity,
		Status:   dtos.StatePending,
	}
	err := reportRepository.Create(nil, &report)
	assert.NoError(t, err)
	return report
}

func TestModerate(t *testing.T) {
	actorID := uuid.New()

	t.Run("should approve a pending report and credit the hunter", func(t *testing.T) {
		service, reportRepository, hunterRepository, eventRepository, broker, hunter := setupModeration(t)
		report := submitPending(t, reportRepository, hunter.ID, dtos.SeverityCritical)

		decided, err := service.Moderate(context.Background(), report.ID, dtos.DecisionApprove, actorID)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StateApproved, decided.Status)
		assert.Equal(t, 400, decided.PointsAwarded)

		stored, err := reportRepository.Read(report.ID)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StateApproved, stored.Status)
		assert.Equal(t, 400, stored.PointsAwarded)

		credited, err := hunterRepository.Read(hunter.ID)
		assert.NoError(t, err)
		assert.Equal(t, 400, credited.TotalPoints)
		assert.Equal(t, 1, credited.TotalApprovedReports)
		assert.Equal(t, "Flame Hunter", credited.Rank)

		events, err := eventRepository.ListByReport(report.ID)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, dtos.DecisionApprove, events[0].Decision)
		assert.Equal(t, 400, events[0].PointsAwarded)
		assert.Equal(t, actorID, events[0].ActorID)

		assert.Len(t, broker.published(), 1)
	})

	t.Run("should reject a report without touching the hunter", func(t *testing.T) {
		service, reportRepository, hunterRepository, eventRepository, _, hunter := setupModeration(t)
		report := submitPending(t, reportRepository, hunter.ID, dtos.SeverityHigh)

		decided, err := service.Moderate(context.Background(), report.ID, dtos.DecisionReject, actorID)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StateRejected, decided.Status)
		assert.Equal(t, 0, decided.PointsAwarded)

		untouched, err := hunterRepository.Read(hunter.ID)
		assert.NoError(t, err)
		assert.Equal(t, 0, untouched.TotalPoints)
		assert.Equal(t, 0, untouched.TotalApprovedReports)
		assert.Equal(t, "Ember Hunter", untouched.Rank)

		events, err := eventRepository.ListByReport(report.ID)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, 0, events[0].PointsAwarded)
	})

	t.Run("should fail with not found for an unknown report", func(t *testing.T) {
		service, _, _, _, _, _ := setupModeration(t)

		_, err := service.Moderate(context.Background(), uuid.New(), dtos.DecisionApprove, actorID)
		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("should reject the second decision on the same report", func(t *testing.T) {
		service, reportRepository, hunterRepository, _, _, hunter := setupModeration(t)
		report := submitPending(t, reportRepository, hunter.ID, dtos.SeverityMedium)

		_, err := service.Moderate(context.Background(), report.ID, dtos.DecisionApprove, actorID)
		assert.NoError(t, err)

		_, err = service.Moderate(context.Background(), report.ID, dtos.DecisionApprove, actorID)
		assert.ErrorIs(t, err, statemachine.ErrAlreadyModerated)

		_, err = service.Moderate(context.Background(), report.ID, dtos.DecisionReject, actorID)
		assert.ErrorIs(t, err, statemachine.ErrAlreadyModerated)

		// the credit happened exactly once
		credited, err := hunterRepository.Read(hunter.ID)
		assert.NoError(t, err)
		assert.Equal(t, 100, credited.TotalPoints)
		assert.Equal(t, 1, credited.TotalApprovedReports)
	})

	t.Run("should apply exactly one of many concurrent decisions", func(t *testing.T) {
		service, reportRepository, hunterRepository, eventRepository, _, hunter := setupModeration(t)
		report := submitPending(t, reportRepository, hunter.ID, dtos.SeverityLow)

		const attempts = 16
		var wg sync.WaitGroup
		successes := make(chan models.Report, attempts)
		conflicts := make(chan error, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				decided, err := service.Moderate(context.Background(), report.ID, dtos.DecisionApprove, uuid.New())
				if err != nil {
					conflicts <- err
					return
				}
				successes <- decided
			}()
		}
		wg.Wait()
		close(successes)
		close(conflicts)

		assert.Len(t, successes, 1)
		assert.Len(t, conflicts, attempts-1)
		for err := range conflicts {
			assert.ErrorIs(t, err, statemachine.ErrAlreadyModerated)
		}

		credited, err := hunterRepository.Read(hunter.ID)
		assert.NoError(t, err)
		assert.Equal(t, 50, credited.TotalPoints)
		assert.Equal(t, 1, credited.TotalApprovedReports)

		events, err := eventRepository.ListByReport(report.ID)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("should keep the aggregate equal to the sum of approved points", func(t *testing.T) {
		service, reportRepository, hunterRepository, _, _, hunter := setupModeration(t)

		severities := []dtos.Severity{
			dtos.SeverityLow, dtos.SeverityMedium, dtos.SeverityHigh,
			dtos.SeverityCritical, dtos.SeverityHigh,
		}
		expected := 0
		for i, severity := range severities {
			report := submitPending(t, reportRepository, hunter.ID, severity)
			decision := dtos.DecisionApprove
			if i == 2 {
				decision = dtos.DecisionReject
			}
			decided, err := service.Moderate(context.Background(), report.ID, decision, actorID)
			assert.NoError(t, err)
			expected += decided.PointsAwarded
		}

		credited, err := hunterRepository.Read(hunter.ID)
		assert.NoError(t, err)
		assert.Equal(t, expected, credited.TotalPoints)
		assert.Equal(t, 4, credited.TotalApprovedReports)
		// 50 + 100 + 400 + 200 = 750 -> Flame Hunter
		assert.Equal(t, "Flame Hunter", credited.Rank)
	})

	t.Run("should surface an unknown decision", func(t *testing.T) {
		service, reportRepository, _, _, _, hunter := setupModeration(t)
		report := submitPending(t, reportRepository, hunter.ID, dtos.SeverityLow)

		_, err := service.Moderate(context.Background(), report.ID, dtos.ModerationDecision("escalate"), actorID)
		assert.ErrorIs(t, err, statemachine.ErrUnknownDecision)

		stored, err := reportRepository.Read(report.ID)
		assert.NoError(t, err)
		assert.Equal(t, dtos.StatePending, stored.Status)
	})
}
