package volunteers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

var validate = validator.New()

type volunteerForm struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phone_number" validate:"required"`
	MinistryID   uint   `json:"ministry_id" validate:"required"`
	Availability string `json:"availability"`
}

func SubmitVolunteerForm(c *gin.Context) {
	var form volunteerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, phone number and ministry are required"})
		return
	}

	var ministry models.Ministry
	if err := utils.DB.First(&ministry, form.MinistryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ministry not found"})
		return
	}

	volunteer := models.Volunteer{
		FullName:     form.FullName,
		Email:        form.Email,
		PhoneNumber:  utils.NormalizePhoneNumber(form.PhoneNumber),
		MinistryID:   ministry.ID,
		Availability: form.Availability,
	}
	if err := utils.DB.Create(&volunteer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit volunteer form"})
		return
	}

	go utils.SendFormNotificationEmail("volunteer", volunteer.FullName, volunteer.Email)

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for volunteering! The ministry leader will reach out."})
}

func GetVolunteers(c *gin.Context) {
	query := utils.DB.Order("created_at desc")
	if ministryID := c.Query("ministry_id"); ministryID != "" {
		query = query.Where("ministry_id = ?", ministryID)
	}

	var volunteers []models.Volunteer
	if err := query.Find(&volunteers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch volunteers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteers": volunteers})
}
