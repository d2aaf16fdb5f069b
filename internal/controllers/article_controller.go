package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ArticleController struct {
	articleService *services.ArticleService
}

func NewArticleController(articleService *services.ArticleService) *ArticleController {
	return &ArticleController{articleService: articleService}
}

type articleRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
	ReadTime int    `json:"readTime"`
}

func (r *articleRequest) toInput() services.ArticleInput {
	return services.ArticleInput{
		Title:    r.Title,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		Author:   r.Author,
		Category: r.Category,
		ImageURL: r.ImageURL,
		ReadTime: r.ReadTime,
	}
}

// Create handles POST /news (protected). Publishing responds as soon as the
// article is stored; newsletter delivery runs in the background.
func (ac *ArticleController) Create(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Title == "" || req.Excerpt == "" || req.Content == "" || req.Author == "" || req.Category == "" || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	article, err := ac.articleService.Create(req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"article": article,
		"message": "Article published! Newsletter emails are being sent to subscribers.",
	})
}

// GetAll handles GET /news.
func (ac *ArticleController) GetAll(c *gin.Context) {
	articles, err := ac.articleService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// List handles GET /articles?skip=&take= — paginated listing that starts
// after the featured articles.
func (ac *ArticleController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	take, _ := strconv.Atoi(c.DefaultQuery("take", "6"))

	articles, err := ac.articleService.List(skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetByID handles GET /news/:id.
func (ac *ArticleController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	article, err := ac.articleService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Update handles PUT /news/:id (protected). Only the provided fields change.
func (ac *ArticleController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	article, err := ac.articleService.Update(id, req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"article": article,
	})
}

// Delete handles DELETE /news/:id (protected).
func (ac *ArticleController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	if err := ac.articleService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article deleted",
	})
}
