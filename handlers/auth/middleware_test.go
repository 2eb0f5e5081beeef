package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

func setupAuthTest(t *testing.T) (*gin.Engine, models.User) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	utils.DB = db
	utils.JwtSecret = []byte("test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	admin := models.User{
		FullName: "CU Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/refresh", RefreshToken)
	protected := r.Group("/admin")
	protected.Use(AuthMiddleware())
	protected.GET("/whoami", func(c *gin.Context) {
		user := c.MustGet("user").(models.User)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r, admin
}

func signedToken(t *testing.T, secret []byte, userID uint, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     exp.Unix(),
	})
	s, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func getWhoami(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	r, admin := setupAuthTest(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abcdef"},
		{"not a jwt", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + signedToken(t, utils.JwtSecret, admin.ID, time.Now().Add(-time.Hour))},
		{"wrong secret", "Bearer " + signedToken(t, []byte("other-secret"), admin.ID, time.Now().Add(time.Hour))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := getWhoami(r, tc.header); w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	r, admin := setupAuthTest(t)

	token, err := utils.GenerateAccessToken(admin.ID)
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	w := getWhoami(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body["email"] != admin.Email {
		t.Errorf("email = %q, want %q", body["email"], admin.Email)
	}
}

func TestRefreshAcceptsExpiredAccessToken(t *testing.T) {
	r, admin := setupAuthTest(t)

	const refreshToken = "refresh-token-1"
	admin.RefreshToken = utils.HashToken(refreshToken)
	if err := utils.DB.Save(&admin).Error; err != nil {
		t.Fatalf("failed to store refresh token: %v", err)
	}

	expired := signedToken(t, utils.JwtSecret, admin.ID, time.Now().Add(-time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", bytes.NewBufferString(fmt.Sprintf(`{"refresh_token": %q}`, refreshToken)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body["access_token"] == "" || body["refresh_token"] == "" {
		t.Errorf("missing tokens in refresh response: %v", body)
	}

	// The old refresh token is rotated out
	var reloaded models.User
	if err := utils.DB.First(&reloaded, admin.ID).Error; err != nil {
		t.Fatalf("failed to reload admin: %v", err)
	}
	if reloaded.RefreshToken == utils.HashToken(refreshToken) {
		t.Error("refresh token was not rotated")
	}
	if reloaded.RefreshToken != utils.HashToken(body["refresh_token"]) {
		t.Error("stored refresh token does not match the one returned")
	}
}

func TestRefreshRejectsWrongRefreshToken(t *testing.T) {
	r, admin := setupAuthTest(t)

	admin.RefreshToken = utils.HashToken("the-real-one")
	if err := utils.DB.Save(&admin).Error; err != nil {
		t.Fatalf("failed to store refresh token: %v", err)
	}

	expired := signedToken(t, utils.JwtSecret, admin.ID, time.Now().Add(-time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", bytes.NewBufferString(`{"refresh_token": "a-guess"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
