package repositories

import (
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
)

type SubscriberRepository interface {
	GetByEmail(email string) (*models.Subscriber, error)
	Create(subscriber *models.Subscriber) error
	SetActive(email string, active bool) error
	// ActiveEmails returns the addresses of every active subscriber in
	// subscription order.
	ActiveEmails() ([]string, error)
	CountActive() (int64, error)
	CountActiveSince(t time.Time) (int64, error)
}
