package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/mailer"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/google/uuid"
)

type mockUserRepo struct {
	getByIDFunc       func(id uuid.UUID) (*models.User, error)
	getByUsernameFunc func(username string) (*models.User, error)
	createFunc        func(user *models.User) error
	updateFunc        func(user *models.User) error
	getAllFunc        func() ([]models.User, error)
}

func (m *mockUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	if m.getByIDFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByIDFunc(id)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	if m.getByUsernameFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByUsernameFunc(username)
}

func (m *mockUserRepo) Create(user *models.User) error {
	if m.createFunc == nil {
		return errors.New("not implemented")
	}
	return m.createFunc(user)
}

func (m *mockUserRepo) Update(user *models.User) error {
	if m.updateFunc == nil {
		return errors.New("not implemented")
	}
	return m.updateFunc(user)
}

func (m *mockUserRepo) GetAll() ([]models.User, error) {
	if m.getAllFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getAllFunc()
}

type mockSubscriberRepo struct {
	getByEmailFunc       func(email string) (*models.Subscriber, error)
	createFunc           func(subscriber *models.Subscriber) error
	setActiveFunc        func(email string, active bool) error
	activeEmailsFunc     func() ([]string, error)
	countActiveFunc      func() (int64, error)
	countActiveSinceFunc func(t time.Time) (int64, error)
}

func (m *mockSubscriberRepo) GetByEmail(email string) (*models.Subscriber, error) {
	if m.getByEmailFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByEmailFunc(email)
}

func (m *mockSubscriberRepo) Create(subscriber *models.Subscriber) error {
	if m.createFunc == nil {
		return errors.New("not implemented")
	}
	return m.createFunc(subscriber)
}

func (m *mockSubscriberRepo) SetActive(email string, active bool) error {
	if m.setActiveFunc == nil {
		return errors.New("not implemented")
	}
	return m.setActiveFunc(email, active)
}

func (m *mockSubscriberRepo) ActiveEmails() ([]string, error) {
	if m.activeEmailsFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.activeEmailsFunc()
}

func (m *mockSubscriberRepo) CountActive() (int64, error) {
	if m.countActiveFunc == nil {
		return 0, errors.New("not implemented")
	}
	return m.countActiveFunc()
}

func (m *mockSubscriberRepo) CountActiveSince(t time.Time) (int64, error) {
	if m.countActiveSinceFunc == nil {
		return 0, errors.New("not implemented")
	}
	return m.countActiveSinceFunc(t)
}

type mockMailer struct {
	sendFunc      func(ctx context.Context, msg mailer.Message) error
	sendBatchFunc func(ctx context.Context, msgs []mailer.Message) error
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error {
	if m.sendFunc == nil {
		return nil
	}
	return m.sendFunc(ctx, msg)
}

func (m *mockMailer) SendBatch(ctx context.Context, msgs []mailer.Message) error {
	if m.sendBatchFunc == nil {
		return nil
	}
	return m.sendBatchFunc(ctx, msgs)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			Secret:     "test-secret-key-minimum-32-characters-long",
			TTL:        "7d",
			CookieName: "admin_session",
		},
		Auth: config.AuthConfig{
			MaxAttempts:  5,
			LockDuration: "15m",
		},
		Newsletter: config.NewsletterConfig{
			BatchSize:  25,
			BatchDelay: "0s",
		},
		Site: config.SiteConfig{
			Name:    "TechFrag",
			BaseURL: "http://localhost:3000",
		},
	}
}
