package migrations

import (
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func MigrateForms() {
	utils.DB.AutoMigrate(&models.Visitor{})
	utils.DB.AutoMigrate(&models.Volunteer{})
	utils.DB.AutoMigrate(&models.PrayerRequest{})
}
