package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/mailer"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/repositories"
	"github.com/rs/zerolog/log"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

// SubscriberService manages newsletter subscriptions: new signups,
// reactivation of unsubscribed addresses, and welcome emails.
type SubscriberService struct {
	subscriberRepo repositories.SubscriberRepository
	mail           mailer.Mailer
	siteName       string
	baseURL        string
}

func NewSubscriberService(subscriberRepo repositories.SubscriberRepository, mail mailer.Mailer, cfg *config.Config) *SubscriberService {
	return &SubscriberService{
		subscriberRepo: subscriberRepo,
		mail:           mail,
		siteName:       cfg.Site.Name,
		baseURL:        cfg.Site.BaseURL,
	}
}

// Subscribe adds email as an active subscriber, reactivating it when a
// previous subscription was deactivated. A welcome email is attempted but
// its failure never fails the subscription.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (string, error) {
	existing, err := s.subscriberRepo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("lookup subscriber: %w", err)
	}

	if existing != nil {
		if existing.IsActive {
			return "", ErrAlreadySubscribed
		}
		if err := s.subscriberRepo.SetActive(email, true); err != nil {
			return "", fmt.Errorf("reactivate subscriber: %w", err)
		}
		s.sendWelcomeEmail(ctx, email)
		return "Subscription reactivated successfully!", nil
	}

	subscriber := &models.Subscriber{Email: email, IsActive: true}
	if err := s.subscriberRepo.Create(subscriber); err != nil {
		return "", fmt.Errorf("create subscriber: %w", err)
	}

	s.sendWelcomeEmail(ctx, email)
	return "Successfully subscribed to newsletter!", nil
}

// Unsubscribe deactivates the subscription for email. Unknown addresses are
// a no-op.
func (s *SubscriberService) Unsubscribe(email string) error {
	return s.subscriberRepo.SetActive(email, false)
}

// IsSubscribed reports whether email has an active subscription.
func (s *SubscriberService) IsSubscribed(email string) (bool, error) {
	subscriber, err := s.subscriberRepo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return subscriber != nil && subscriber.IsActive, nil
}

func (s *SubscriberService) sendWelcomeEmail(ctx context.Context, email string) {
	html, err := mailer.RenderWelcome(s.siteName, s.baseURL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to render welcome email")
		return
	}

	msg := mailer.Message{
		To:      email,
		Subject: fmt.Sprintf("Welcome to %s Newsletter!", s.siteName),
		HTML:    html,
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		if errors.Is(err, mailer.ErrDisabled) {
			log.Warn().Str("email", email).Msg("Welcome email skipped: email transport disabled")
			return
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to send welcome email")
	}
}
