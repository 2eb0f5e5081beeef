package migrations

import (
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func MigratePayments() {
	utils.DB.AutoMigrate(&models.Payment{})
}
