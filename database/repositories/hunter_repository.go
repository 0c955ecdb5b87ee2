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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HunterRepository struct {
	*GormRepository[uuid.UUID, models.Hunter]
	db *gorm.DB
}

func NewHunterRepository(db *gorm.DB) *HunterRepository {
	return &HunterRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Hunter](db),
		db:             db,
	}
}

// ReadForUpdate locks the hunter row for the rest of the transaction.
// Concurrent approvals for the same hunter serialize here, so the rank is
// always computed from the latest total.
func (r *HunterRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.Hunter, error) {
	var hunter models.Hunter
	err := r.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&hunter, "id = ?", id).Error
	return hunter, err
}

func (r *HunterRepository) ReadByUsername(username string) (models.Hunter, error) {
	var hunter models.Hunter
	err := r.db.First(&hunter, "username = ?", username).Error
	return hunter, err
}

func (r *HunterRepository) ApplyApproval(tx *gorm.DB, hunterID uuid.UUID, points int, rank string) error {
	return r.GetDB(tx).Model(&models.Hunter{}).
		Where("id = ?", hunterID).
		Updates(map[string]any{
			"total_points":           gorm.Expr("total_points + ?", points),
			"total_approved_reports": gorm.Expr("total_approved_reports + 1"),
			"rank":                   rank,
		}).Error
}

func (r *HunterRepository) OverwriteAggregate(tx *gorm.DB, hunterID uuid.UUID, totalPoints int, totalApprovedReports int, rank string) error {
	return r.GetDB(tx).Model(&models.Hunter{}).
		Where("id = ?", hunterID).
		Updates(map[string]any{
			"total_points":           totalPoints,
			"total_approved_reports": totalApprovedReports,
			"rank":                   rank,
		}).Error
}
