package handler_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/mindwave-app/mindwave/internal/handler"
	"github.com/mindwave-app/mindwave/internal/repository/sqlite"
	"github.com/mindwave-app/mindwave/internal/service"
)

const (
	testJWTSecret  = "test-secret-for-handler-tests"
	testIterations = 1000
)

func newTestServices(t *testing.T) (*service.AuthService, *service.FaceService, *sqlite.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	auth := service.NewAuthService(db.Users(), testJWTSecret, testIterations, 24*time.Hour)
	faces := service.NewFaceService(db.Users())
	return auth, faces, db
}

func newTestMux(t *testing.T) (*http.ServeMux, *service.AuthService, *sqlite.DB) {
	t.Helper()
	auth, faces, db := newTestServices(t)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, faces, false)
	return mux, auth, db
}
