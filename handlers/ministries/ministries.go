package ministries

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func GetMinistries(c *gin.Context) {
	var ministries []models.Ministry
	if err := utils.DB.Order("name asc").Find(&ministries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ministries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ministries": ministries})
}

func GetMinistry(c *gin.Context) {
	var ministry models.Ministry
	if err := utils.DB.First(&ministry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ministry": ministry})
}
