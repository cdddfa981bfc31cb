package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func postJSON(t *testing.T, mux *http.ServeMux, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) authResponse {
	t.Helper()
	var resp authResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("expected auth_token cookie")
	return nil
}

func TestHandleSignup(t *testing.T) {
	mux, _, db := newTestMux(t)

	w := postJSON(t, mux, "/signup", `{"username":"alice","password":"s3cr3t"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	resp := decodeAuth(t, w)
	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the response")
	}

	cookie := sessionCookie(t, w)
	if !cookie.HttpOnly {
		t.Fatal("expected HttpOnly session cookie")
	}
	if cookie.Value != resp.Token {
		t.Fatal("expected cookie to carry the same token as the body")
	}

	// Stored credential record: 64-char salt plus 128-char digest.
	user, err := db.Users().GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if len(user.PasswordHash) != 192 {
		t.Fatalf("expected 192-char credential record, got %d", len(user.PasswordHash))
	}
}

func TestHandleSignup_DuplicateUsername(t *testing.T) {
	mux, _, _ := newTestMux(t)

	if w := postJSON(t, mux, "/signup", `{"username":"alice","password":"s3cr3t"}`); w.Code != http.StatusCreated {
		t.Fatalf("first signup: expected 201, got %d", w.Code)
	}

	w := postJSON(t, mux, "/signup", `{"username":"alice","password":"other"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", w.Code)
	}
	if resp := decodeAuth(t, w); resp.Success {
		t.Fatal("expected success=false")
	}
}

func TestHandleSignup_MissingFields(t *testing.T) {
	mux, _, _ := newTestMux(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"username":"alice"}`},
		{"missing username", `{"password":"s3cr3t"}`},
		{"empty body", `{}`},
		{"malformed json", `{"username":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, mux, "/signup", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestHandleLogin(t *testing.T) {
	mux, _, db := newTestMux(t)

	if w := postJSON(t, mux, "/signup", `{"username":"alice","password":"s3cr3t"}`); w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", w.Code)
	}

	w := postJSON(t, mux, "/login", `{"username":"alice","password":"s3cr3t"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	resp := decodeAuth(t, w)
	if !resp.Success || resp.Token == "" {
		t.Fatalf("expected success with token, got %+v", resp)
	}
	sessionCookie(t, w)

	user, err := db.Users().GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user.LastLogin == nil {
		t.Fatal("expected last_login to be updated")
	}
	if user.LastLogin.Before(user.CreatedAt) {
		t.Fatalf("last_login %v precedes created_at %v", user.LastLogin, user.CreatedAt)
	}
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	mux, _, _ := newTestMux(t)

	if w := postJSON(t, mux, "/signup", `{"username":"alice","password":"s3cr3t"}`); w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", w.Code)
	}

	wrongPassword := postJSON(t, mux, "/login", `{"username":"alice","password":"wrong"}`)
	unknownUser := postJSON(t, mux, "/login", `{"username":"nobody","password":"s3cr3t"}`)

	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", wrongPassword.Code)
	}
	if unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user: expected 401, got %d", unknownUser.Code)
	}

	// The two failures must be indistinguishable.
	if decodeAuth(t, wrongPassword).Message != decodeAuth(t, unknownUser).Message {
		t.Fatal("expected identical messages for wrong password and unknown username")
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	mux, _, _ := newTestMux(t)

	w := postJSON(t, mux, "/login", `{"username":"alice"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
