package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subscriber struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	SubscribedAt time.Time `gorm:"type:timestamptz;not null;default:now()" json:"subscribedAt"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

// BeforeCreate hook to generate UUID
func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = time.Now().UTC()
	}
	return nil
}
