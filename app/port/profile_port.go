package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"session-manager/app/domain"
)

// ProfileRepository defines profile data access keyed by identity ID
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error)
}
