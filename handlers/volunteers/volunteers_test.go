package volunteers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func setupVolunteerTest(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Ministry{}, &models.Volunteer{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	utils.DB = db

	if err := db.Create(&models.Ministry{Name: "Ushering"}).Error; err != nil {
		t.Fatalf("failed to seed ministry: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/volunteers", SubmitVolunteerForm)
	return r
}

func postForm(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/volunteers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitVolunteerForm(t *testing.T) {
	r := setupVolunteerTest(t)

	w := postForm(r, `{"full_name": "Mary W", "email": "mary@example.com", "phone_number": "0712345678", "ministry_id": 1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	var volunteer models.Volunteer
	if err := utils.DB.First(&volunteer).Error; err != nil {
		t.Fatalf("volunteer row missing: %v", err)
	}
	if volunteer.PhoneNumber != "254712345678" {
		t.Errorf("stored phone = %q, want normalized 254712345678", volunteer.PhoneNumber)
	}
}

func TestSubmitVolunteerFormValidation(t *testing.T) {
	r := setupVolunteerTest(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"full_name": "Mary W", "phone_number": "0712345678", "ministry_id": 1}`},
		{"bad email", `{"full_name": "Mary W", "email": "not-an-email", "phone_number": "0712345678", "ministry_id": 1}`},
		{"missing ministry", `{"full_name": "Mary W", "email": "mary@example.com", "phone_number": "0712345678"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := postForm(r, tc.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}

	var count int64
	utils.DB.Model(&models.Volunteer{}).Count(&count)
	if count != 0 {
		t.Errorf("volunteer rows after invalid submissions = %d, want 0", count)
	}

	t.Run("unknown ministry", func(t *testing.T) {
		if w := postForm(r, `{"full_name": "Mary W", "email": "mary@example.com", "phone_number": "0712345678", "ministry_id": 99}`); w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
