package repositories

import (
	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"gorm.io/gorm"
)

type ModerationEventRepository struct {
	*GormRepository[uuid.UUID, models.ModerationEvent]
	db *gorm.DB
}

func NewModerationEventRepository(db *gorm.DB) *ModerationEventRepository {
	return &ModerationEventRepository{
		GormRepository: newGormRepository[uuid.UUID, models.ModerationEvent](db),
		db:             db,
	}
}

func (r *ModerationEventRepository) ListByReport(reportID uuid.UUID) ([]models.ModerationEvent, error) {
	var events []models.ModerationEvent
	err := r.db.Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}
