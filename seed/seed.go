// seed/seed.go
package seed

import (
	"errors"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

// SeedAdminUser creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. There is no self-service registration; admin accounts
// only come from here.
func SeedAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	err := utils.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Admin account already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName: "CU Admin",
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := utils.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin account seeded successfully.")
	return nil
}

// SeedMinistries inserts the core ministries once.
func SeedMinistries() error {
	var count int64
	if err := utils.DB.Model(&models.Ministry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Ministries already exist. Skipping seeding.")
		return nil
	}

	ministries := []models.Ministry{
		{Name: "Praise and Worship", Description: "Leads the fellowship in song during services and keshas.", MeetingTime: "Fridays 5:00 PM"},
		{Name: "Ushering", Description: "Welcomes members and visitors and keeps services orderly.", MeetingTime: "Sundays 7:30 AM"},
		{Name: "Bible Study", Description: "Weekly small-group Bible study across hostels.", MeetingTime: "Wednesdays 7:00 PM"},
		{Name: "Missions and Evangelism", Description: "Organizes outreaches, missions and follow-up.", MeetingTime: "Saturdays 2:00 PM"},
		{Name: "Media and Technical", Description: "Sound, projection, photography and the website.", MeetingTime: "Saturdays 10:00 AM"},
	}
	if err := utils.DB.Create(&ministries).Error; err != nil {
		return err
	}

	log.Println("Ministries seeded successfully.")
	return nil
}

// SeedSchedule inserts the weekly programme once.
func SeedSchedule() error {
	var count int64
	if err := utils.DB.Model(&models.ScheduleItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Weekly schedule already exists. Skipping seeding.")
		return nil
	}

	items := []models.ScheduleItem{
		{DayOfWeek: 0, StartTime: "08:00", EndTime: "10:00", Title: "Sunday Service", Venue: "Main Auditorium"},
		{DayOfWeek: 3, StartTime: "19:00", EndTime: "20:30", Title: "Midweek Bible Study", Venue: "Lecture Hall 2"},
		{DayOfWeek: 5, StartTime: "17:00", EndTime: "19:00", Title: "Friday Fellowship", Venue: "Main Auditorium"},
		{DayOfWeek: 6, StartTime: "14:00", EndTime: "16:00", Title: "Evangelism and Outreach", Venue: "Campus Grounds"},
	}
	if err := utils.DB.Create(&items).Error; err != nil {
		return err
	}

	log.Println("Weekly schedule seeded successfully.")
	return nil
}

// SeedAnnouncement makes sure the current month has a featured banner.
func SeedAnnouncement() error {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	var existing models.Announcement
	err := utils.DB.Where("month = ? AND year = ? AND featured = ?", month, year, true).First(&existing).Error
	if err == nil {
		log.Println("Featured announcement already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	announcement := models.Announcement{
		Title:       "Welcome to a new semester",
		Description: "Join us for the semester kickoff service this Sunday at 8 AM in the Main Auditorium.",
		Month:       month,
		Year:        year,
		Featured:    true,
	}
	if err := utils.DB.Create(&announcement).Error; err != nil {
		return err
	}

	log.Println("Featured announcement seeded successfully.")
	return nil
}
