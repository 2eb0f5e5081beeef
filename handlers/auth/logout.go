package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func Logout(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	now := time.Now()
	user.RefreshToken = ""
	user.LastLogoutAt = &now
	if err := utils.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful.",
	})
}
