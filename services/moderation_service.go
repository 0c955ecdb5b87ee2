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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/monitoring"
	"github.com/phxsec/phoenixportal/scoring"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/statemachine"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ModerationService struct {
	reportRepository          shared.ReportRepository
	hunterRepository          shared.HunterRepository
	moderationEventRepository shared.ModerationEventRepository
	broker                    shared.Broker
}

func NewModerationService(reportRepository shared.ReportRepository, hunterRepository shared.HunterRepository, moderationEventRepository shared.ModerationEventRepository, broker shared.Broker) *ModerationService {
	return &ModerationService{
		reportRepository:          reportRepository,
		hunterRepository:          hunterRepository,
		moderationEventRepository: moderationEventRepository,
		broker:                    broker,
	}
}

// Moderate applies a terminal decision to a pending report. The decision, the
// points credit, the rank update and the audit event are committed in one
// transaction. The conditional update on the pending state guarantees that
// out of any number of concurrent decisions for the same report exactly one
// takes effect - every other caller gets ErrAlreadyModerated.
func (s *ModerationService) Moderate(ctx context.Context, reportID uuid.UUID, decision dtos.ModerationDecision, actorID uuid.UUID) (models.Report, error) {
	report, err := s.reportRepository.Read(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Report{}, ErrReportNotFound
		}
		return models.Report{}, errors.Wrap(err, "could not read report")
	}

	decided, event, err := statemachine.Decide(report, decision, actorID, time.Now())
	if err != nil {
		if errors.Is(err, statemachine.ErrAlreadyModerated) {
			monitoring.ModerationConflicts.Inc()
		}
		return models.Report{}, err
	}

	err = s.reportRepository.Transaction(func(tx shared.DB) error {
		transitioned, err := s.reportRepository.UpdateIfPending(tx, &decided)
		if err != nil {
			return errors.Wrap(err, "could not update report")
		}
		if !transitioned {
			// lost the race against a concurrent moderator
			monitoring.ModerationConflicts.Inc()
			return statemachine.ErrAlreadyModerated
		}

		if decided.Status == dtos.StateApproved {
			// lock the hunter row so the rank is derived from the total
			// including this approval and every earlier one
			hunter, err := s.hunterRepository.ReadForUpdate(tx, decided.HunterID)
			if err != nil {
				return errors.Wrap(err, "could not read hunter")
			}
			rank, err := scoring.RankFor(hunter.TotalPoints + decided.PointsAwarded)
			if err != nil {
				return errors.Wrap(err, "could not compute rank")
			}
			if err := s.hunterRepository.ApplyApproval(tx, decided.HunterID, decided.PointsAwarded, string(rank)); err != nil {
				return errors.Wrap(err, "could not credit hunter")
			}
		}

		return s.moderationEventRepository.Create(tx, &event)
	})
	if err != nil {
		return models.Report{}, err
	}

	switch decided.Status {
	case dtos.StateApproved:
		monitoring.ReportsApproved.Inc()
	case dtos.StateRejected:
		monitoring.ReportsRejected.Inc()
	}

	// notify after commit, subscribers reading back observe the new state
	if err := s.broker.Publish(ctx, shared.NewSimpleMessage(shared.ChannelReportModerated, map[string]any{
		"reportId":      decided.ID.String(),
		"hunterId":      decided.HunterID.String(),
		"status":        string(decided.Status),
		"pointsAwarded": decided.PointsAwarded,
	})); err != nil {
		slog.Error("could not publish moderation message", "err", err, "reportId", decided.ID)
	}

	slog.Info("report moderated", "reportId", decided.ID, "decision", decision, "points", decided.PointsAwarded, "actorId", actorID)
	return decided, nil
}
