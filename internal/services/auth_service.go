package services

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns accounts and sessions: signup, login, logout, and
// resolving a session token back to its user. Passwords are bcrypt-hashed;
// session tokens are random UUIDs with a fixed TTL.
type AuthService struct {
	db         *gorm.DB
	log        *zap.SugaredLogger
	sessionTTL time.Duration
}

func NewAuthService(db *gorm.DB, log *zap.SugaredLogger, sessionTTL time.Duration) *AuthService {
	return &AuthService{db: db, log: log, sessionTTL: sessionTTL}
}

// SignUp creates a new account and an initial session. The email must be
// normalized (lowercased, trimmed) by the caller's validation step.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, errors.Wrap(err, "create user")
	}
	s.log.Infow("user signed up", "user_id", user.ID)

	return s.createSession(ctx, user)
}

// SignIn verifies credentials and opens a new session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.createSession(ctx, &user)
}

// SignOut revokes a session token. Unknown tokens are not an error.
func (s *AuthService) SignOut(ctx context.Context, token uuid.UUID) error {
	err := s.db.WithContext(ctx).Where("id = ?", token).Delete(&models.Session{}).Error
	if err != nil {
		return errors.Wrap(err, "delete session")
	}
	return nil
}

// UserFromToken resolves a session token to its user. Expired or unknown
// tokens yield ErrInvalidSession.
func (s *AuthService) UserFromToken(ctx context.Context, token uuid.UUID) (*models.User, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND expires_at > ?", token, time.Now()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, errors.Wrap(err, "find session")
	}
	return &session.User, nil
}

func (s *AuthService) createSession(ctx context.Context, user *models.User) (*models.Session, error) {
	session := &models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, errors.Wrap(err, "create session")
	}
	session.User = *user
	return session, nil
}
