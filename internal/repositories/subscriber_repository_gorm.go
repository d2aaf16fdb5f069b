package repositories

import (
	"errors"
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"gorm.io/gorm"
)

// GormSubscriberRepository implements SubscriberRepository using GORM.
type GormSubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *GormSubscriberRepository {
	return &GormSubscriberRepository{db: db}
}

func (r *GormSubscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	if err := r.db.First(&subscriber, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *GormSubscriberRepository) Create(subscriber *models.Subscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *GormSubscriberRepository) SetActive(email string, active bool) error {
	return r.db.Model(&models.Subscriber{}).
		Where("email = ?", email).
		Update("is_active", active).Error
}

func (r *GormSubscriberRepository) ActiveEmails() ([]string, error) {
	var emails []string
	err := r.db.Model(&models.Subscriber{}).
		Where("is_active = ?", true).
		Order("subscribed_at").
		Pluck("email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *GormSubscriberRepository) CountActive() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Subscriber{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSubscriberRepository) CountActiveSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscriber{}).
		Where("is_active = ? AND subscribed_at >= ?", true, t).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
