package repositories

import (
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/google/uuid"
)

type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	GetAll() ([]models.User, error)
}
