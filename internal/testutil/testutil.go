package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ridwansameer/simple-todo-api/internal/auth"
	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with foreign keys enabled.
// The pool is pinned to one connection so every query sees the same memory
// database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Organisation{},
		&models.Membership{},
		&models.Project{},
		&models.Todo{},
		&models.Assignment{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB closes the test database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("warning: failed to get sql.DB: %v", err)
		return
	}
	sqlDB.Close()
}

// CreateTestUser creates a user with a unique email and a known password
// ("testpass", hashed).
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("testpass")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         "Test User",
		Email:        "test-" + uuid.New().String()[:8] + "@example.com",
		PasswordHash: hash,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateTestOrganisation creates an organisation with the given user as ADMIN.
func CreateTestOrganisation(t *testing.T, db *gorm.DB, admin *models.User) *models.Organisation {
	t.Helper()

	org := &models.Organisation{Name: "Test Organisation"}
	if err := db.Create(org).Error; err != nil {
		t.Fatalf("failed to create test organisation: %v", err)
	}

	AddTestMember(t, db, org, admin, models.RoleAdmin)
	return org
}

// AddTestMember inserts a membership row.
func AddTestMember(t *testing.T, db *gorm.DB, org *models.Organisation, user *models.User, role string) {
	t.Helper()

	membership := &models.Membership{
		UserID:         user.ID,
		OrganisationID: org.ID,
		Role:           role,
	}
	if err := db.Create(membership).Error; err != nil {
		t.Fatalf("failed to create test membership: %v", err)
	}
}

// CreateTestProject creates a project under the organisation.
func CreateTestProject(t *testing.T, db *gorm.DB, org *models.Organisation) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:           "Test Project",
		Description:    "A project for tests",
		OrganisationID: org.ID,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}

	return project
}

// CreateTestTodo creates a todo in the project, authored by creator.
func CreateTestTodo(t *testing.T, db *gorm.DB, project *models.Project, creator *models.User) *models.Todo {
	t.Helper()

	todo := &models.Todo{
		Title:       "Test Todo",
		Description: "A todo for tests",
		ProjectID:   project.ID,
		Status:      models.StatusTodo,
		CreatedBy:   &creator.ID,
	}
	if err := db.Create(todo).Error; err != nil {
		t.Fatalf("failed to create test todo: %v", err)
	}

	return todo
}

// CreateTestComment creates a comment on the todo, authored by author.
func CreateTestComment(t *testing.T, db *gorm.DB, todo *models.Todo, author *models.User) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Content:   "Test comment",
		TodoID:    todo.ID,
		CreatedBy: &author.ID,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create test comment: %v", err)
	}

	return comment
}

// NewTestJWTService creates a JWT service for testing
func NewTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret-key-for-testing", 24*time.Hour)
}

// GenerateTestToken generates a valid token for the given user
func GenerateTestToken(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()

	token, err := jwtService.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	return token
}

// AuthenticatedRequest creates an HTTP request with authentication
func AuthenticatedRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// UnauthenticatedRequest creates an HTTP request without authentication
func UnauthenticatedRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	return AuthenticatedRequest(t, method, path, body, "")
}

// ParseJSONResponse parses the response body into the given struct
func ParseJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response body: %v. Body: %s", err, rr.Body.String())
	}
}
