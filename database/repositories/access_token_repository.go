package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
	"gorm.io/gorm"
)

type AccessTokenRepository struct {
	db *gorm.DB
}

func NewAccessTokenRepository(db *gorm.DB) *AccessTokenRepository {
	return &AccessTokenRepository{db: db}
}

func (r *AccessTokenRepository) ReadByFingerprint(fingerprint string) (models.AccessToken, error) {
	var token models.AccessToken
	err := r.db.First(&token, "fingerprint = ?", fingerprint).Error
	return token, err
}

func (r *AccessTokenRepository) Create(tx *gorm.DB, token *models.AccessToken) error {
	if tx != nil {
		return tx.Create(token).Error
	}
	return r.db.Create(token).Error
}

func (r *AccessTokenRepository) MarkUsed(id uuid.UUID) error {
	return r.db.Model(&models.AccessToken{}).
		Where("id = ?", id).
		Update("last_used_at", time.Now()).Error
}
