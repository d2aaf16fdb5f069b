package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt     string    `gorm:"type:text;not null" json:"excerpt"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Author      string    `gorm:"type:varchar(255);not null" json:"author"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category"`
	ImageURL    string    `gorm:"type:text;not null" json:"imageUrl"`
	ReadTime    int       `gorm:"not null;default:5" json:"readTime"`
	PublishedAt time.Time `gorm:"type:timestamptz;not null;default:now();index" json:"publishedAt"`
}

func (Article) TableName() string {
	return "articles"
}

// BeforeCreate hook to generate UUID
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Now().UTC()
	}
	return nil
}
