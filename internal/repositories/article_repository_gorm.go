package repositories

import (
	"errors"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormArticleRepository implements ArticleRepository using GORM.
type GormArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

func (r *GormArticleRepository) GetByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *GormArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *GormArticleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Article{}, "id = ?", id).Error
}

func (r *GormArticleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.Order("published_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *GormArticleRepository) List(limit, offset int) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.Order("published_at DESC").Limit(limit).Offset(offset).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *GormArticleRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Article{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormArticleRepository) Recent(n int) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.Order("published_at DESC").Limit(n).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
