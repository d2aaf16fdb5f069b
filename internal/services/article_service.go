package services

import (
	"context"
	"errors"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/repositories"
	"github.com/google/uuid"
)

var ErrArticleNotFound = errors.New("article not found")

const defaultReadTime = 5

// featuredCount is the number of articles pinned to the homepage carousel;
// the paginated listing starts after them.
const featuredCount = 3

// ArticleInput carries the writable article fields from the API layer.
// Empty fields are ignored on update.
type ArticleInput struct {
	Title    string
	Excerpt  string
	Content  string
	Author   string
	Category string
	ImageURL string
	ReadTime int
}

// ArticleService handles article CRUD. Creating an article fires the
// newsletter dispatch on a background goroutine; the publish result never
// depends on dispatch outcome.
type ArticleService struct {
	articleRepo repositories.ArticleRepository
	newsletter  *NewsletterService
}

func NewArticleService(articleRepo repositories.ArticleRepository, newsletter *NewsletterService) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		newsletter:  newsletter,
	}
}

// Create persists a new article and kicks off newsletter delivery in the
// background.
func (s *ArticleService) Create(input ArticleInput) (*models.Article, error) {
	readTime := input.ReadTime
	if readTime <= 0 {
		readTime = defaultReadTime
	}

	article := &models.Article{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Author:   input.Author,
		Category: input.Category,
		ImageURL: input.ImageURL,
		ReadTime: readTime,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	// Fire and forget: the dispatcher owns its own error boundary and the
	// request does not wait for delivery.
	go s.newsletter.SendArticleNewsletter(context.Background(), article)

	return article, nil
}

func (s *ArticleService) GetByID(id uuid.UUID) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *ArticleService) GetAll() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

// List returns a page of articles after the featured set, newest first.
func (s *ArticleService) List(skip, take int) ([]models.Article, error) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = 6
	}
	return s.articleRepo.List(take, skip+featuredCount)
}

// Update applies the non-empty fields of input to an existing article.
func (s *ArticleService) Update(id uuid.UUID, input ArticleInput) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if input.Title != "" {
		article.Title = input.Title
	}
	if input.Excerpt != "" {
		article.Excerpt = input.Excerpt
	}
	if input.Content != "" {
		article.Content = input.Content
	}
	if input.Author != "" {
		article.Author = input.Author
	}
	if input.Category != "" {
		article.Category = input.Category
	}
	if input.ImageURL != "" {
		article.ImageURL = input.ImageURL
	}
	if input.ReadTime > 0 {
		article.ReadTime = input.ReadTime
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Delete(id uuid.UUID) error {
	return s.articleRepo.Delete(id)
}
