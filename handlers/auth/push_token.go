package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

// SavePushToken stores the Expo push token of an admin device so it can
// receive alerts for new prayer requests.
func SavePushToken(c *gin.Context) {
	var req struct {
		PushToken string `json:"push_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	if err := utils.DB.Model(&user).Update("push_token", req.PushToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save push token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Push token saved"})
}
