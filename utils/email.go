package utils

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

// SendFormNotificationEmail alerts the fellowship office inbox that a new
// form submission arrived. Failures are logged only; form handling never
// depends on mail delivery.
func SendFormNotificationEmail(formKind, submitterName, submitterEmail string) {
	office := os.Getenv("OFFICE_EMAIL")
	if office == "" {
		log.Println("OFFICE_EMAIL is not set; skipping form notification email")
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", office)
	m.SetHeader("Subject", fmt.Sprintf("New %s submission", formKind))
	m.SetBody("text/plain", fmt.Sprintf("A new %s form was submitted by %s (%s). Log in to the admin panel to view it.", formKind, submitterName, submitterEmail))

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send %s notification email: %v", formKind, err)
		return
	}

	log.Printf("%s notification email sent to %s", formKind, office)
}
