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
	"bytes"
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/monitoring"
	"github.com/phxsec/phoenixportal/scoring"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/phxsec/phoenixportal/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LeaderboardService struct {
	reportRepository shared.ReportRepository
	hunterRepository shared.HunterRepository
}

func NewLeaderboardService(reportRepository shared.ReportRepository, hunterRepository shared.HunterRepository) *LeaderboardService {
	return &LeaderboardService{
		reportRepository: reportRepository,
		hunterRepository: hunterRepository,
	}
}

// Rankings recomputes the leaderboard from the approved reports. Hunters
// without a single approved report do not appear. The order is total: points
// descending, then approved reports descending, then hunter id ascending, so
// two scans over the same data always yield the same sequence.
func (s *LeaderboardService) Rankings(ctx context.Context) ([]dtos.HunterAggregate, error) {
	start := time.Now()
	defer func() {
		monitoring.LeaderboardScanDuration.Observe(time.Since(start).Seconds())
	}()

	approved, err := s.reportRepository.ListApproved()
	if err != nil {
		return nil, errors.Wrap(err, "could not list approved reports")
	}

	byHunter := make(map[uuid.UUID]*dtos.HunterAggregate)
	for _, report := range approved {
		aggregate, ok := byHunter[report.HunterID]
		if !ok {
			aggregate = &dtos.HunterAggregate{HunterID: report.HunterID}
			byHunter[report.HunterID] = aggregate
		}
		aggregate.TotalPoints += report.PointsAwarded
		aggregate.TotalApprovedReports++
	}

	ids := make([]uuid.UUID, 0, len(byHunter))
	for id := range byHunter {
		ids = append(ids, id)
	}
	hunters, err := s.hunterRepository.List(ids)
	if err != nil {
		return nil, errors.Wrap(err, "could not list hunters")
	}

	rankings := make([]dtos.HunterAggregate, 0, len(byHunter))
	for _, hunter := range hunters {
		aggregate, ok := byHunter[hunter.ID]
		if !ok {
			continue
		}
		rank, err := scoring.RankFor(aggregate.TotalPoints)
		if err != nil {
			return nil, errors.Wrap(err, "could not compute rank")
		}
		aggregate.Username = hunter.Username
		aggregate.Rank = string(rank)
		rankings = append(rankings, *aggregate)
	}

	slices.SortFunc(rankings, compareAggregates)
	return rankings, nil
}

// AggregateFor derives the reputation view of a single hunter from their
// approved reports. A hunter without any approved report, or an id nobody
// ever registered, gets the zero aggregate with the base rank. Absence of
// activity is not an error.
func (s *LeaderboardService) AggregateFor(ctx context.Context, hunterID uuid.UUID) (dtos.HunterAggregate, error) {
	aggregate := dtos.HunterAggregate{HunterID: hunterID}

	hunter, err := s.hunterRepository.Read(hunterID)
	switch {
	case err == nil:
		aggregate.Username = hunter.Username
	case errors.Is(err, gorm.ErrRecordNotFound):
		// unknown hunter, nothing to add to the zero aggregate
	default:
		return dtos.HunterAggregate{}, errors.Wrap(err, "could not read hunter")
	}

	reports, err := s.reportRepository.ListByHunter(hunterID)
	if err != nil {
		return dtos.HunterAggregate{}, errors.Wrap(err, "could not list reports")
	}

	approved := utils.Filter(reports, func(report models.Report) bool {
		return report.Status == dtos.StateApproved
	})
	aggregate.TotalPoints = utils.Reduce(approved, func(sum int, report models.Report) int {
		return sum + report.PointsAwarded
	}, 0)
	aggregate.TotalApprovedReports = len(approved)

	rank, err := scoring.RankFor(aggregate.TotalPoints)
	if err != nil {
		return dtos.HunterAggregate{}, errors.Wrap(err, "could not compute rank")
	}
	aggregate.Rank = string(rank)
	return aggregate, nil
}

// RecomputeAggregates rebuilds the stored per-hunter totals from the approved
// reports. It exists to repair drift, the HTTP path never calls it. Each
// hunter is repaired in its own transaction that locks the hunter row before
// scanning the reports. Moderation takes the same lock before crediting, so a
// decision landing mid-repair either commits before the scan and is counted,
// or waits for the repair and credits on top of the fresh totals.
func (s *LeaderboardService) RecomputeAggregates(ctx context.Context) (int, error) {
	hunters, err := s.hunterRepository.All()
	if err != nil {
		return 0, errors.Wrap(err, "could not list hunters")
	}

	repaired := 0
	for _, hunter := range hunters {
		err := s.reportRepository.Transaction(func(tx shared.DB) error {
			current, err := s.hunterRepository.ReadForUpdate(tx, hunter.ID)
			if err != nil {
				return errors.Wrap(err, "could not lock hunter")
			}

			aggregate, err := s.AggregateFor(ctx, hunter.ID)
			if err != nil {
				return err
			}
			if aggregate.TotalPoints == current.TotalPoints &&
				aggregate.TotalApprovedReports == current.TotalApprovedReports &&
				aggregate.Rank == current.Rank {
				return nil
			}

			if err := s.hunterRepository.OverwriteAggregate(tx, hunter.ID, aggregate.TotalPoints, aggregate.TotalApprovedReports, aggregate.Rank); err != nil {
				return errors.Wrap(err, "could not overwrite aggregate")
			}
			repaired++
			return nil
		})
		if err != nil {
			return repaired, err
		}
	}
	return repaired, nil
}

func compareAggregates(a, b dtos.HunterAggregate) int {
	if c := cmp.Compare(b.TotalPoints, a.TotalPoints); c != 0 {
		return c
	}
	if c := cmp.Compare(b.TotalApprovedReports, a.TotalApprovedReports); c != 0 {
		return c
	}
	return bytes.Compare(a.HunterID[:], b.HunterID[:])
}

// HunterProfile combines the aggregate with the full report history. Unlike
// AggregateFor it is a lookup of a concrete hunter, so an unknown id is an
// error here.
func (s *LeaderboardService) HunterProfile(ctx context.Context, hunterID uuid.UUID) (dtos.HunterAggregate, []models.Report, error) {
	if _, err := s.hunterRepository.Read(hunterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.HunterAggregate{}, nil, ErrHunterNotFound
		}
		return dtos.HunterAggregate{}, nil, errors.Wrap(err, "could not read hunter")
	}

	aggregate, err := s.AggregateFor(ctx, hunterID)
	if err != nil {
		return dtos.HunterAggregate{}, nil, err
	}
	reports, err := s.reportRepository.ListByHunter(hunterID)
	if err != nil {
		return dtos.HunterAggregate{}, nil, errors.Wrap(err, "could not list reports")
	}
	return aggregate, reports, nil
}
