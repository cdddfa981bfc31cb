package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mindwave-app/mindwave/internal/domain"
	"github.com/mindwave-app/mindwave/internal/service"
)

// FaceHandler handles reference face registration.
type FaceHandler struct {
	faces *service.FaceService
}

// NewFaceHandler creates a new FaceHandler.
func NewFaceHandler(faces *service.FaceService) *FaceHandler {
	return &FaceHandler{faces: faces}
}

// HandleRegisterFace stores a base64-encoded reference face image for the
// authenticated user.
// POST /register-face
// Request:  {"face_image":"..."}
// Response: 200 {"success":true,"message":"..."}
func (h *FaceHandler) HandleRegisterFace(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		FaceImage string `json:"face_image"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.faces.Register(r.Context(), user.ID, req.FaceImage); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Face image required")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			slog.Error("register face", "error", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Face registered successfully",
	})
}
