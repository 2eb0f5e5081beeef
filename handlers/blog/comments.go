package blog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

// SubmitComment creates a comment in pending state; it only becomes
// visible once an admin approves it.
func SubmitComment(c *gin.Context) {
	var post models.BlogPost
	if err := utils.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	var input struct {
		AuthorName string `json:"author_name"`
		Body       string `json:"body"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AuthorName == "" || input.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and comment are required"})
		return
	}

	comment := models.Comment{
		BlogPostID: post.ID,
		AuthorName: input.AuthorName,
		Body:       input.Body,
		Status:     models.CommentStatusPending,
	}
	if err := utils.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment submitted for review"})
}

func GetApprovedComments(c *gin.Context) {
	var post models.BlogPost
	if err := utils.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	var comments []models.Comment
	if err := utils.DB.Where("blog_post_id = ? AND status = ?", post.ID, models.CommentStatusApproved).
		Order("created_at asc").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func GetPendingComments(c *gin.Context) {
	var comments []models.Comment
	if err := utils.DB.Where("status = ?", models.CommentStatusPending).Order("created_at asc").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func ApproveComment(c *gin.Context) {
	var comment models.Comment
	if err := utils.DB.First(&comment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	comment.Status = models.CommentStatusApproved
	if err := utils.DB.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment approved"})
}

func DeleteComment(c *gin.Context) {
	if err := utils.DB.Delete(&models.Comment{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
