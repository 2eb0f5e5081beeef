package gallery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func GetGalleryImages(c *gin.Context) {
	query := utils.DB.Order("created_at desc")
	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}

	var images []models.GalleryImage
	if err := query.Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery images"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

func AddGalleryImage(c *gin.Context) {
	var image models.GalleryImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if image.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
		return
	}

	if err := utils.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add gallery image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": image})
}

func DeleteGalleryImage(c *gin.Context) {
	if err := utils.DB.Delete(&models.GalleryImage{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gallery image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted"})
}
