package repositories

import (
	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"github.com/phxsec/phoenixportal/dtos"
	"gorm.io/gorm"
)

type EventRegistrationRepository struct {
	*GormRepository[uuid.UUID, models.EventRegistration]
	db *gorm.DB
}

func NewEventRegistrationRepository(db *gorm.DB) *EventRegistrationRepository {
	return &EventRegistrationRepository{
		GormRepository: newGormRepository[uuid.UUID, models.EventRegistration](db),
		db:             db,
	}
}

// UpdateIfPending mirrors the report compare-and-set for registrations.
func (r *EventRegistrationRepository) UpdateIfPending(tx *gorm.DB, registration *models.EventRegistration) (bool, error) {
	res := r.GetDB(tx).Model(&models.EventRegistration{}).
		Where("id = ? AND status = ?", registration.ID, dtos.StatePending).
		Updates(map[string]any{
			"status":     registration.Status,
			"decided_at": registration.DecidedAt,
			"decided_by": registration.DecidedBy,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *EventRegistrationRepository) CountApproved(tx *gorm.DB, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.GetDB(tx).Model(&models.EventRegistration{}).
		Where("event_id = ? AND status = ?", eventID, dtos.StateApproved).
		Count(&count).Error
	return count, err
}

func (r *EventRegistrationRepository) ListPending() ([]models.EventRegistration, error) {
	var registrations []models.EventRegistration
	err := r.db.Where("status = ?", dtos.StatePending).
		Order("created_at ASC").
		Find(&registrations).Error
	return registrations, err
}
