package blog

import (
	"bytes"
	"encoding/json"
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

func setupCommentTest(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.BlogPost{}, &models.Comment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	utils.DB = db

	post := models.BlogPost{Title: "Easter Kesha Recap", Slug: "easter-kesha-recap", Body: "..."}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to seed blog post: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/blog/:slug/comments", SubmitComment)
	r.GET("/blog/:slug/comments", GetApprovedComments)
	r.POST("/admin/comments/:id/approve", ApproveComment)
	return r
}

func TestCommentModerationFlow(t *testing.T) {
	r := setupCommentTest(t)

	body := `{"author_name": "Brian", "body": "Blessed service!"}`
	req := httptest.NewRequest(http.MethodPost, "/blog/easter-kesha-recap/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d (%s)", w.Code, w.Body.String())
	}

	// Not visible before approval
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog/easter-kesha-recap/comments", nil))
	var listing struct {
		Comments []models.Comment `json:"comments"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("listing is not JSON: %v", err)
	}
	if len(listing.Comments) != 0 {
		t.Fatalf("pending comment is publicly visible: %+v", listing.Comments)
	}

	var comment models.Comment
	if err := utils.DB.First(&comment).Error; err != nil {
		t.Fatalf("comment row missing: %v", err)
	}
	if comment.Status != models.CommentStatusPending {
		t.Errorf("new comment status = %q, want pending", comment.Status)
	}

	// Approve, then it shows up
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/comments/%d/approve", comment.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog/easter-kesha-recap/comments", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("listing is not JSON: %v", err)
	}
	if len(listing.Comments) != 1 || listing.Comments[0].AuthorName != "Brian" {
		t.Errorf("approved comment not listed: %+v", listing.Comments)
	}
}

func TestSubmitCommentUnknownPost(t *testing.T) {
	r := setupCommentTest(t)

	req := httptest.NewRequest(http.MethodPost, "/blog/no-such-post/comments", bytes.NewBufferString(`{"author_name": "A", "body": "B"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
