package repositories

import (
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/google/uuid"
)

type ArticleRepository interface {
	GetByID(id uuid.UUID) (*models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id uuid.UUID) error
	// GetAll returns every article ordered by published_at descending.
	GetAll() ([]models.Article, error)
	// List returns a page of articles ordered by published_at descending.
	List(limit, offset int) ([]models.Article, error)
	Count() (int64, error)
	Recent(n int) ([]models.Article, error)
}
