package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/mailer"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/repositories"
	"github.com/rs/zerolog/log"
)

// NewsletterService fans a freshly published article out to every active
// subscriber. Batches are submitted strictly sequentially with a fixed delay
// between them to stay under the provider's rate limit, so dispatch latency
// grows linearly with subscriber count.
type NewsletterService struct {
	subscriberRepo repositories.SubscriberRepository
	mail           mailer.Mailer
	siteName       string
	baseURL        string
	batchSize      int
	batchDelay     time.Duration
}

func NewNewsletterService(
	subscriberRepo repositories.SubscriberRepository,
	mail mailer.Mailer,
	cfg *config.Config,
) (*NewsletterService, error) {
	batchDelay, err := cfg.Newsletter.GetBatchDelay()
	if err != nil {
		return nil, fmt.Errorf("invalid batch delay: %w", err)
	}

	return &NewsletterService{
		subscriberRepo: subscriberRepo,
		mail:           mail,
		siteName:       cfg.Site.Name,
		baseURL:        cfg.Site.BaseURL,
		batchSize:      cfg.Newsletter.BatchSize,
		batchDelay:     batchDelay,
	}, nil
}

// SendArticleNewsletter delivers the newsletter for article to all active
// subscribers. A failed batch is logged and counted but never stops the
// remaining batches. The returned counts are per-recipient.
//
// Callers invoke this in a background goroutine after the article has been
// durably created; a dispatch failure must never surface to the publish
// request.
func (s *NewsletterService) SendArticleNewsletter(ctx context.Context, article *models.Article) (sent, failed int) {
	emails, err := s.subscriberRepo.ActiveEmails()
	if err != nil {
		log.Error().Err(err).Str("article_id", article.ID.String()).Msg("Failed to load subscribers for newsletter")
		return 0, 0
	}

	if len(emails) == 0 {
		log.Info().Str("article_id", article.ID.String()).Msg("No active subscribers to send newsletter to")
		return 0, 0
	}

	html, err := mailer.RenderNewsletter(s.siteName, s.baseURL, article)
	if err != nil {
		log.Error().Err(err).Str("article_id", article.ID.String()).Msg("Failed to render newsletter")
		return 0, len(emails)
	}
	subject := fmt.Sprintf("New Article: %s", article.Title)

	batches := batchEmails(emails, s.batchSize)

	log.Info().
		Str("article_id", article.ID.String()).
		Int("subscribers", len(emails)).
		Int("batches", len(batches)).
		Msg("Sending newsletter")

	for i, batch := range batches {
		msgs := make([]mailer.Message, 0, len(batch))
		for _, email := range batch {
			msgs = append(msgs, mailer.Message{To: email, Subject: subject, HTML: html})
		}

		if err := s.mail.SendBatch(ctx, msgs); err != nil {
			failed += len(batch)
			if errors.Is(err, mailer.ErrDisabled) {
				log.Error().Str("article_id", article.ID.String()).Msg("Cannot send newsletter: email transport disabled")
				return sent, failed + countRemaining(batches, i+1)
			}
			log.Error().Err(err).
				Int("batch", i+1).
				Int("batches", len(batches)).
				Msg("Newsletter batch delivery failed")
		} else {
			sent += len(batch)
			log.Debug().
				Int("batch", i+1).
				Int("batches", len(batches)).
				Int("recipients", len(batch)).
				Msg("Newsletter batch sent")
		}

		// Pause before the next batch to respect the provider rate limit.
		if i < len(batches)-1 && s.batchDelay > 0 {
			time.Sleep(s.batchDelay)
		}
	}

	log.Info().
		Str("article_id", article.ID.String()).
		Int("sent", sent).
		Int("failed", failed).
		Msg("Newsletter delivery complete")

	return sent, failed
}

// batchEmails partitions emails into consecutive batches of at most size,
// preserving order. The last batch may be smaller.
func batchEmails(emails []string, size int) [][]string {
	if size <= 0 {
		size = 25
	}
	var batches [][]string
	for i := 0; i < len(emails); i += size {
		end := i + size
		if end > len(emails) {
			end = len(emails)
		}
		batches = append(batches, emails[i:end])
	}
	return batches
}

func countRemaining(batches [][]string, from int) int {
	n := 0
	for i := from; i < len(batches); i++ {
		n += len(batches[i])
	}
	return n
}
