package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/jwt"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// PasswordCost is the bcrypt cost used for new passwords.
const PasswordCost = 10

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash, role string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, id jwt.Identity) (string, error)
}

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
	adminEmails map[string]struct{}
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithAdminEmails grants the admin role to registrations with one of these emails.
func WithAdminEmails(emails ...string) AuthOption {
	return func(svc *AuthService) {
		for _, e := range emails {
			if e = NormalizeEmail(e); e != "" {
				svc.adminEmails[e] = struct{}{}
			}
		}
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, kafkaWriter KafkaWriter, opts ...AuthOption) *AuthService {
	svc := &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
		adminEmails: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// NormalizeEmail trims and lower-cases an email; stored emails are always normalized.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns it together with a fresh token.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	role := models.RoleUser
	if _, ok := svc.adminEmails[email]; ok {
		role = models.RoleAdmin
	}

	user, err := svc.writer.Save(ctx, name, email, string(hashedPassword), role)
	if errors.Is(err, repositories.ErrConflict) {
		// lost a race against a concurrent registration
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	token, err := svc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EventUserRegistered, user.UserID, 0))

	return &models.AuthResponse{User: user.ToUser(), Token: token}, nil
}

// Login authenticates a user. Unknown email and wrong password are
// indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = NormalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, err := svc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{User: user.ToUser(), Token: token}, nil
}

// Profile returns the user the token was issued for.
func (svc *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	u := user.ToUser()
	return &u, nil
}

func (svc *AuthService) issueToken(ctx context.Context, user *models.UserDB) (string, error) {
	token, err := svc.jwt.Generate(ctx, jwt.Identity{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}
