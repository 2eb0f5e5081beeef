package visitors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

var validate = validator.New()

type visitorForm struct {
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	HeardFrom   string `json:"heard_from"`
	Message     string `json:"message"`
}

func SubmitVisitorForm(c *gin.Context) {
	var form visitorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A name and a valid email address are required"})
		return
	}

	visitor := models.Visitor{
		FullName:    form.FullName,
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		HeardFrom:   form.HeardFrom,
		Message:     form.Message,
	}
	if err := utils.DB.Create(&visitor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit visitor form"})
		return
	}

	go utils.SendFormNotificationEmail("visitor", visitor.FullName, visitor.Email)

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for visiting! We will be in touch."})
}

func GetVisitors(c *gin.Context) {
	var visitors []models.Visitor
	if err := utils.DB.Order("created_at desc").Find(&visitors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch visitors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visitors": visitors})
}
