package handler

import (
	"net/http"

	"github.com/mindwave-app/mindwave/internal/view"
)

// HandleLanding renders the landing page. Signed-in visitors are greeted by
// name.
func HandleLanding(w http.ResponseWriter, r *http.Request) {
	username := ""
	if user := UserFromContext(r.Context()); user != nil {
		username = user.Username
	}
	view.LandingPage(username).Render(r.Context(), w)
}

// HandleLoginPage renders the login form.
func HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	view.LoginPage().Render(r.Context(), w)
}

// HandleSignupPage renders the signup form.
func HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	view.SignupPage().Render(r.Context(), w)
}

// HandleFaceRegisterPage renders the face registration page.
func HandleFaceRegisterPage(w http.ResponseWriter, r *http.Request) {
	view.FaceRegisterPage().Render(r.Context(), w)
}

// HandleAssessment renders the assessment page for the signed-in user.
func HandleAssessment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	view.AssessmentPage(user.Username).Render(r.Context(), w)
}

// HandleDashboard renders the dashboard page for the signed-in user.
func HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	view.DashboardPage(user.Username).Render(r.Context(), w)
}
