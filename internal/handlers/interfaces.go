package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/models"
)

// ApplicationStore is what the application handlers need from the service
// layer. Satisfied by services.ApplicationService.
type ApplicationStore interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Application, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Application, error)
	Create(ctx context.Context, userID uuid.UUID, in models.ApplicationInput) (*models.Application, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.ApplicationInput) (*models.Application, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.Status) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// SectionStore is what the section handlers need from the service layer.
// Satisfied by services.SectionService.
type SectionStore interface {
	ListWithCounts(ctx context.Context, userID uuid.UUID) ([]models.Section, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*models.Section, error)
	Rename(ctx context.Context, userID, id uuid.UUID, name string) (*models.Section, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Authenticator is what the auth handlers and middleware need from the
// service layer. Satisfied by services.AuthService.
type Authenticator interface {
	SignUp(ctx context.Context, email, password string) (*models.Session, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, token uuid.UUID) error
	UserFromToken(ctx context.Context, token uuid.UUID) (*models.User, error)
}
