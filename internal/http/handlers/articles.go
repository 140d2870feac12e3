package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"transtour/internal/domain/models"
	"transtour/internal/repositories"

	"github.com/gin-gonic/gin"
)

type articlePayload struct {
	Title   string `json:"title" binding:"required"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// GET /api/articles?q=&page=&limit=
func GetArticles(c *gin.Context) {
	list, err := repositories.ArticleRepository{}.List(c.Query("q"), formInt(c.Query("page"), 1), formInt(c.Query("limit"), 50))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/articles/:id
func GetArticleByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	article, err := repositories.ArticleRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// POST /api/articles
func CreateArticle(c *gin.Context) {
	var payload articlePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title wajib diisi"})
		return
	}

	slug := strings.TrimSpace(payload.Slug)
	if slug == "" {
		slug = slugify(title)
	}

	id, err := repositories.ArticleRepository{}.Create(models.Article{
		Title:   title,
		Slug:    slug,
		Content: payload.Content,
		Author:  strings.TrimSpace(payload.Author),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menambah artikel: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "artikel berhasil ditambahkan", "id": id})
}

// PUT /api/articles/:id
func UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	var payload articlePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	title := strings.TrimSpace(payload.Title)
	slug := strings.TrimSpace(payload.Slug)
	if slug == "" {
		slug = slugify(title)
	}

	err = repositories.ArticleRepository{}.Update(id, models.Article{
		Title:   title,
		Slug:    slug,
		Content: payload.Content,
		Author:  strings.TrimSpace(payload.Author),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "artikel berhasil diupdate"})
}

// DELETE /api/articles/:id
func DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	if err := (repositories.ArticleRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "artikel berhasil dihapus"})
}

var slugNonWord = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugNonWord.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
