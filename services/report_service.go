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

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/monitoring"
	"github.com/phxsec/phoenixportal/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ReportService struct {
	reportRepository shared.ReportRepository
	hunterRepository shared.HunterRepository
}

func NewReportService(reportRepository shared.ReportRepository, hunterRepository shared.HunterRepository) *ReportService {
	return &ReportService{
		reportRepository: reportRepository,
		hunterRepository: hunterRepository,
	}
}

// Submit persists a new report in the pending state. Severity is only
// classified here, points are not assigned until a moderator approves.
func (s *ReportService) Submit(ctx context.Context, dto dtos.ReportCreateDTO) (models.Report, error) {
	if _, err := s.hunterRepository.Read(dto.HunterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Report{}, ErrHunterNotFound
		}
		return models.Report{}, errors.Wrap(err, "could not read hunter")
	}

	report := models.Report{
		HunterID:           dto.HunterID,
		Target:             dto.Target,
		TargetType:         dto.TargetType,
		VulnerabilityClass: dto.VulnerabilityClass,
		Description:        dto.Description,
		Severity:           dto.Severity,
		Status:             dtos.StatePending,
	}

	if err := s.reportRepository.Create(nil, &report); err != nil {
		return models.Report{}, errors.Wrap(err, "could not create report")
	}

	monitoring.ReportsSubmitted.Inc()
	slog.Info("report submitted", "reportId", report.ID, "hunterId", report.HunterID, "severity", report.Severity)
	return report, nil
}

func (s *ReportService) PendingQueue(ctx context.Context) ([]models.Report, error) {
	return s.reportRepository.ListPending()
}

func (s *ReportService) HunterReports(ctx context.Context, hunterID uuid.UUID) ([]models.Report, error) {
	if _, err := s.hunterRepository.Read(hunterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHunterNotFound
		}
		return nil, errors.Wrap(err, "could not read hunter")
	}
	return s.reportRepository.ListByHunter(hunterID)
}
