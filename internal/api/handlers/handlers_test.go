package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ridwansameer/simple-todo-api/internal/api"
	"github.com/ridwansameer/simple-todo-api/internal/auth"
	"github.com/ridwansameer/simple-todo-api/internal/authz"
	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"github.com/ridwansameer/simple-todo-api/internal/store"
	"github.com/ridwansameer/simple-todo-api/internal/testutil"
	"gorm.io/gorm"
)

// testEnv wires the full router against an in-memory database so handler
// tests exercise routing, middleware and persistence together.
type testEnv struct {
	router http.Handler
	db     *gorm.DB
	jwt    *auth.JWTService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	st := store.NewStore(db)
	jwtService := testutil.NewTestJWTService()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := api.NewRouter(api.RouterConfig{
		DB:          db,
		Logger:      logger,
		JWTService:  jwtService,
		AuthService: auth.NewService(st, jwtService),
		Store:       st,
		Authz:       authz.NewService(db),
	})

	return &testEnv{router: router, db: db, jwt: jwtService}
}

func (e *testEnv) token(t *testing.T, user *models.User) string {
	t.Helper()
	return testutil.GenerateTestToken(t, e.jwt, user)
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}
