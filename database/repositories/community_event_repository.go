package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityEventRepository struct {
	*GormRepository[uuid.UUID, models.CommunityEvent]
	db *gorm.DB
}

func NewCommunityEventRepository(db *gorm.DB) *CommunityEventRepository {
	return &CommunityEventRepository{
		GormRepository: newGormRepository[uuid.UUID, models.CommunityEvent](db),
		db:             db,
	}
}

// ReadForUpdate locks the event row so concurrent registration approvals for
// the same event serialize on the capacity check.
func (r *CommunityEventRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.CommunityEvent, error) {
	var event models.CommunityEvent
	err := r.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&event, "id = ?", id).Error
	return event, err
}

func (r *CommunityEventRepository) Upcoming() ([]models.CommunityEvent, error) {
	var events []models.CommunityEvent
	err := r.db.Where("event_date >= ?", time.Now()).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}
