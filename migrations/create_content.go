package migrations

import (
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func MigrateContent() {
	utils.DB.AutoMigrate(&models.Event{})
	utils.DB.AutoMigrate(&models.Ministry{})
	utils.DB.AutoMigrate(&models.ScheduleItem{})
	utils.DB.AutoMigrate(&models.GalleryImage{})
	utils.DB.AutoMigrate(&models.BlogPost{})
	utils.DB.AutoMigrate(&models.Comment{})
	utils.DB.AutoMigrate(&models.Announcement{})
}
