package announcements

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func GetCurrentAnnouncement(c *gin.Context) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	var announcement models.Announcement
	if err := utils.DB.Where("month = ? AND year = ? AND featured = ?", month, year, true).First(&announcement).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No featured announcement for this month"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"announcement": announcement,
	})
}

func CreateAnnouncement(c *gin.Context) {
	var announcement models.Announcement
	if err := c.ShouldBindJSON(&announcement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.DB.Create(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"announcement": announcement})
}
