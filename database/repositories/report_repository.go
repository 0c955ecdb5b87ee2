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

package repositories

import (
	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"gorm.io/gorm"
)

type ReportRepository struct {
	*GormRepository[uuid.UUID, models.Report]
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Report](db),
		db:             db,
	}
}

// UpdateIfPending is the compare-and-set behind the at-most-once moderation
// guarantee: the update only matches while the row is still pending. Zero
// rows affected means a concurrent call decided the report first.
func (r *ReportRepository) UpdateIfPending(tx *gorm.DB, report *models.Report) (bool, error) {
	res := r.GetDB(tx).Model(&models.Report{}).
		Where("id = ? AND status = ?", report.ID, dtos.StatePending).
		Updates(map[string]any{
			"status":         report.Status,
			"points_awarded": report.PointsAwarded,
			"decided_at":     report.DecidedAt,
			"decided_by":     report.DecidedBy,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ReportRepository) ListPending() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Preload("Hunter").
		Where("status = ?", dtos.StatePending).
		Order("created_at ASC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) ListApproved() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("status = ?", dtos.StateApproved).Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) ListByHunter(hunterID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("hunter_id = ?", hunterID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
