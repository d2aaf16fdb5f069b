package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/mailer"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberService_Subscribe_NewEmail(t *testing.T) {
	var created *models.Subscriber
	repo := &mockSubscriberRepo{
		getByEmailFunc: func(email string) (*models.Subscriber, error) {
			return nil, nil
		},
		createFunc: func(subscriber *models.Subscriber) error {
			created = subscriber
			return nil
		},
	}

	var welcomed []string
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, msg mailer.Message) error {
			welcomed = append(welcomed, msg.To)
			return nil
		},
	}

	svc := services.NewSubscriberService(repo, mail, newTestConfig())
	message, err := svc.Subscribe(context.Background(), "reader@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Successfully subscribed to newsletter!", message)
	require.NotNil(t, created)
	assert.Equal(t, "reader@example.com", created.Email)
	assert.True(t, created.IsActive)
	assert.Equal(t, []string{"reader@example.com"}, welcomed)
}

func TestSubscriberService_Subscribe_ReactivatesInactive(t *testing.T) {
	reactivated := false
	repo := &mockSubscriberRepo{
		getByEmailFunc: func(email string) (*models.Subscriber, error) {
			return &models.Subscriber{
				Email:        email,
				IsActive:     false,
				SubscribedAt: time.Now().Add(-30 * 24 * time.Hour),
			}, nil
		},
		setActiveFunc: func(email string, active bool) error {
			reactivated = active
			return nil
		},
	}

	svc := services.NewSubscriberService(repo, &mockMailer{}, newTestConfig())
	message, err := svc.Subscribe(context.Background(), "reader@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Subscription reactivated successfully!", message)
	assert.True(t, reactivated)
}

func TestSubscriberService_Subscribe_ActiveEmailConflicts(t *testing.T) {
	repo := &mockSubscriberRepo{
		getByEmailFunc: func(email string) (*models.Subscriber, error) {
			return &models.Subscriber{Email: email, IsActive: true}, nil
		},
	}

	svc := services.NewSubscriberService(repo, &mockMailer{}, newTestConfig())
	_, err := svc.Subscribe(context.Background(), "reader@example.com")

	assert.ErrorIs(t, err, services.ErrAlreadySubscribed)
}

func TestSubscriberService_Subscribe_WelcomeEmailFailureIsIgnored(t *testing.T) {
	repo := &mockSubscriberRepo{
		getByEmailFunc: func(email string) (*models.Subscriber, error) {
			return nil, nil
		},
		createFunc: func(subscriber *models.Subscriber) error {
			return nil
		},
	}
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, msg mailer.Message) error {
			return errors.New("provider unavailable")
		},
	}

	svc := services.NewSubscriberService(repo, mail, newTestConfig())
	_, err := svc.Subscribe(context.Background(), "reader@example.com")

	// Subscription succeeds even when the welcome email cannot be sent.
	assert.NoError(t, err)
}

func TestSubscriberService_IsSubscribed(t *testing.T) {
	repo := &mockSubscriberRepo{
		getByEmailFunc: func(email string) (*models.Subscriber, error) {
			switch email {
			case "active@example.com":
				return &models.Subscriber{Email: email, IsActive: true}, nil
			case "inactive@example.com":
				return &models.Subscriber{Email: email, IsActive: false}, nil
			default:
				return nil, nil
			}
		},
	}

	svc := services.NewSubscriberService(repo, &mockMailer{}, newTestConfig())

	subscribed, err := svc.IsSubscribed("active@example.com")
	require.NoError(t, err)
	assert.True(t, subscribed)

	subscribed, err = svc.IsSubscribed("inactive@example.com")
	require.NoError(t, err)
	assert.False(t, subscribed)

	subscribed, err = svc.IsSubscribed("unknown@example.com")
	require.NoError(t, err)
	assert.False(t, subscribed)
}
