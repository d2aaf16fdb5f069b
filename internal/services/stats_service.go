package services

import (
	"fmt"
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/repositories"
)

// DashboardStats is the payload of the admin dashboard endpoint.
type DashboardStats struct {
	TotalArticles        int64           `json:"totalArticles"`
	TotalSubscribers     int64           `json:"totalSubscribers"`
	SubscribersThisMonth int64           `json:"subscribersThisMonth"`
	RecentArticles       []RecentArticle `json:"recentArticles"`
}

type RecentArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadTime    int       `json:"readTime"`
	Category    string    `json:"category"`
}

// StatsService aggregates counts for the admin dashboard.
type StatsService struct {
	articleRepo    repositories.ArticleRepository
	subscriberRepo repositories.SubscriberRepository
}

func NewStatsService(articleRepo repositories.ArticleRepository, subscriberRepo repositories.SubscriberRepository) *StatsService {
	return &StatsService{
		articleRepo:    articleRepo,
		subscriberRepo: subscriberRepo,
	}
}

func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	totalArticles, err := s.articleRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	totalSubscribers, err := s.subscriberRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	subscribersThisMonth, err := s.subscriberRepo.CountActiveSince(startOfMonth(time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("count recent subscribers: %w", err)
	}

	recent, err := s.articleRepo.Recent(10)
	if err != nil {
		return nil, fmt.Errorf("load recent articles: %w", err)
	}

	return &DashboardStats{
		TotalArticles:        totalArticles,
		TotalSubscribers:     totalSubscribers,
		SubscribersThisMonth: subscribersThisMonth,
		RecentArticles:       toRecentArticles(recent),
	}, nil
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func toRecentArticles(articles []models.Article) []RecentArticle {
	recent := make([]RecentArticle, 0, len(articles))
	for _, a := range articles {
		recent = append(recent, RecentArticle{
			ID:          a.ID.String(),
			Title:       a.Title,
			PublishedAt: a.PublishedAt,
			ReadTime:    a.ReadTime,
			Category:    a.Category,
		})
	}
	return recent
}
