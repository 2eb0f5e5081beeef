package blog

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func GetPosts(c *gin.Context) {
	var posts []models.BlogPost
	if err := utils.DB.Where("published_at IS NOT NULL").Order("published_at desc").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func GetPost(c *gin.Context) {
	var post models.BlogPost
	if err := utils.DB.Where("slug = ? AND published_at IS NOT NULL", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := false
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func CreatePost(c *gin.Context) {
	var input struct {
		Title         string `json:"title"`
		Author        string `json:"author"`
		Body          string `json:"body"`
		CoverImageURL string `json:"cover_image_url"`
		Publish       bool   `json:"publish"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title == "" || input.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and body are required"})
		return
	}

	post := models.BlogPost{
		Title:         input.Title,
		Slug:          slugify(input.Title),
		Author:        input.Author,
		Body:          input.Body,
		CoverImageURL: input.CoverImageURL,
	}
	if input.Publish {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := utils.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}
