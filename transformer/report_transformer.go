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

package transformer

import (
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"github.com/phxsec/phoenixportal/utils"
)

func ReportToDTO(report models.Report) dtos.ReportDTO {
	return dtos.ReportDTO{
		ID:                 report.ID,
		HunterID:           report.HunterID,
		Target:             report.Target,
		TargetType:         report.TargetType,
		VulnerabilityClass: report.VulnerabilityClass,
		Description:        report.Description,
		Severity:           report.Severity,
		Status:             report.Status,
		PointsAwarded:      report.PointsAwarded,
		CreatedAt:          report.CreatedAt,
		DecidedAt:          report.DecidedAt,
	}
}

func ReportsToDTOs(reports []models.Report) []dtos.ReportDTO {
	return utils.Map(reports, ReportToDTO)
}

func ModerationEventToDTO(event models.ModerationEvent) dtos.ModerationEventDTO {
	return dtos.ModerationEventDTO{
		ID:            event.ID,
		ReportID:      event.ReportID,
		HunterID:      event.HunterID,
		Decision:      event.Decision,
		PointsAwarded: event.PointsAwarded,
		ActorID:       event.ActorID,
		CreatedAt:     event.CreatedAt,
	}
}
