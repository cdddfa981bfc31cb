package service

import (
	"context"
	"fmt"

	"github.com/mindwave-app/mindwave/internal/domain"
)

// FaceService stores reference face images for later biometric use.
// The image is an opaque base64 string; no decoding or matching happens here.
type FaceService struct {
	users domain.UserRepository
}

// NewFaceService creates a new FaceService.
func NewFaceService(users domain.UserRepository) *FaceService {
	return &FaceService{users: users}
}

// Register overwrites the user's reference face image.
func (s *FaceService) Register(ctx context.Context, userID int64, image string) error {
	if image == "" {
		return fmt.Errorf("%w: face image required", domain.ErrInvalidInput)
	}
	if err := s.users.SetReferenceFace(ctx, userID, image); err != nil {
		return fmt.Errorf("set reference face: %w", err)
	}
	return nil
}
