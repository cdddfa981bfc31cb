package handler

import (
	"net/http"

	"github.com/mindwave-app/mindwave/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, faces *service.FaceService, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	faceHandler := NewFaceHandler(faces)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Entry pages: no auth required.
	mux.Handle("GET /{$}", OptionalAuth(auth, http.HandlerFunc(HandleLanding)))
	mux.HandleFunc("GET /login", HandleLoginPage)
	mux.HandleFunc("GET /signup", HandleSignupPage)
	mux.HandleFunc("GET /register-face", HandleFaceRegisterPage)

	// Protected pages: redirect to login when unauthenticated.
	mux.Handle("GET /assessment", RequirePageAuth(auth, http.HandlerFunc(HandleAssessment)))
	mux.Handle("GET /dashboard", RequirePageAuth(auth, http.HandlerFunc(HandleDashboard)))

	// JSON API.
	mux.HandleFunc("POST /signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.Handle("POST /register-face", RequireAuth(auth, http.HandlerFunc(faceHandler.HandleRegisterFace)))
}
