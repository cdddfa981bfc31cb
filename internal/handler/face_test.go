package handler_test

import (
	"context"
	"net/http"
	"testing"
)

func signupFor(t *testing.T, mux *http.ServeMux, username string) *http.Cookie {
	t.Helper()
	w := postJSON(t, mux, "/signup", `{"username":"`+username+`","password":"s3cr3t"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", w.Code)
	}
	return sessionCookie(t, w)
}

func TestHandleRegisterFace(t *testing.T) {
	mux, _, db := newTestMux(t)
	cookie := signupFor(t, mux, "alice")

	w := postJSON(t, mux, "/register-face", `{"face_image":"data:image/png;base64,iVBORw0KGgo="}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp := decodeAuth(t, w); !resp.Success {
		t.Fatal("expected success=true")
	}

	user, err := db.Users().GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user.ReferenceFace != "data:image/png;base64,iVBORw0KGgo=" {
		t.Fatal("expected reference face to be stored verbatim")
	}
}

func TestHandleRegisterFace_Unauthenticated(t *testing.T) {
	mux, _, _ := newTestMux(t)

	// No session: 401 regardless of payload.
	w := postJSON(t, mux, "/register-face", `{"face_image":"data"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestHandleRegisterFace_MissingImage(t *testing.T) {
	mux, _, _ := newTestMux(t)
	cookie := signupFor(t, mux, "alice")

	w := postJSON(t, mux, "/register-face", `{}`, cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
