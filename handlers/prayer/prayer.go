package prayer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

// SubmitPrayerRequest stores a prayer request under a generated tracking
// code and alerts admin devices. The submitter can check on the request
// later with the code, without an account.
func SubmitPrayerRequest(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Contact string `json:"contact"`
		Request string `json:"request"`
		Public  bool   `json:"public"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Request == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A prayer request is required"})
		return
	}

	request := models.PrayerRequest{
		TrackingCode: uuid.NewString(),
		Name:         input.Name,
		Contact:      input.Contact,
		Request:      input.Request,
		Public:       input.Public,
		Status:       models.PrayerStatusPending,
	}
	if err := utils.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit prayer request"})
		return
	}

	go notifyAdmins()

	c.JSON(http.StatusOK, gin.H{
		"message":       "Prayer request received",
		"tracking_code": request.TrackingCode,
	})
}

func notifyAdmins() {
	var admins []models.User
	if err := utils.DB.Where("push_token <> ''").Find(&admins).Error; err != nil {
		return
	}
	for _, admin := range admins {
		utils.SendExpoPush(admin.PushToken, "New prayer request", "A new prayer request is waiting in the admin panel.")
	}
}

func GetPrayerRequestByCode(c *gin.Context) {
	var request models.PrayerRequest
	if err := utils.DB.Where("tracking_code = ?", c.Param("code")).First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     request.Status,
		"created_at": request.CreatedAt,
	})
}

func GetPrayerRequests(c *gin.Context) {
	query := utils.DB.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.PrayerRequest
	if err := query.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prayer_requests": requests})
}

func MarkPrayedFor(c *gin.Context) {
	var request models.PrayerRequest
	if err := utils.DB.First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	request.Status = models.PrayerStatusPrayedFor
	if err := utils.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prayer request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request marked as prayed for"})
}

func ArchivePrayerRequest(c *gin.Context) {
	var request models.PrayerRequest
	if err := utils.DB.First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	request.Status = models.PrayerStatusArchived
	if err := utils.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive prayer request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request archived"})
}
