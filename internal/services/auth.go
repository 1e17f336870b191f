package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/bookmarker/internal/jwt"
	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/sbilibin2017/bookmarker/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// TokenIssuer issues access/refresh tokens and verifies refresh tokens.
type TokenIssuer interface {
	GenerateAccess(ctx context.Context, userID int64) (string, error)
	GenerateRefresh(ctx context.Context, userID int64) (string, error)
	ParseRefresh(ctx context.Context, token string) (*jwt.Claims, error)
}

// AuthService handles registration, login and token refresh.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	tokens    TokenIssuer
	cost      int
	dummyHash []byte
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithBcryptCost overrides bcrypt.DefaultCost.
func WithBcryptCost(cost int) AuthOpt {
	return func(svc *AuthService) {
		svc.cost = cost
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer, opts ...AuthOpt) *AuthService {
	svc := &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(svc)
	}

	// Compared against on unknown emails so both login failures cost the same.
	hash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to build dummy password hash", "err", err)
	}
	svc.dummyHash = hash

	return svc
}

// Register validates the input, rejects taken email/username and stores a new user.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserProfile, error) {
	if err := validateRegistration(username, email, password); err != nil {
		logger.Log.Infow("registration rejected", "username", username, "reason", err.Error())
		return nil, err
	}

	if taken, err := svc.exists(ctx, svc.reader.GetByEmail, email); err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	if taken, err := svc.exists(ctx, svc.reader.GetByUsername, username); err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	switch {
	case repositories.IsDuplicateOf(err, repositories.ConstraintUserEmail):
		return nil, ErrEmailTaken
	case repositories.IsDuplicateOf(err, repositories.ConstraintUserUsername):
		return nil, ErrUsernameTaken
	case err != nil:
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.UserID)
	return user.Profile(), nil
}

// Login verifies the credentials and issues a token pair.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserProfile, *models.TokenPair, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(svc.dummyHash, []byte(password))
		logger.Log.Infow("login failed", "reason", "unknown email")
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login failed", "reason", "wrong password", "user_id", user.UserID)
		return nil, nil, ErrInvalidCredentials
	}

	access, err := svc.tokens.GenerateAccess(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, nil, err
	}
	refresh, err := svc.tokens.GenerateRefresh(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return nil, nil, err
	}

	return user.Profile(), &models.TokenPair{Access: access, Refresh: refresh}, nil
}

// WhoAmI returns the profile of the authenticated caller.
func (svc *AuthService) WhoAmI(ctx context.Context, auth models.AuthContext) (*models.UserProfile, error) {
	user, err := svc.reader.GetByID(ctx, auth.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Infow("token subject no longer exists", "user_id", auth.UserID)
		return nil, ErrInvalidToken
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	return user.Profile(), nil
}

// Refresh exchanges a valid refresh token for a new access token.
// The refresh token itself stays valid until it expires.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := svc.tokens.ParseRefresh(ctx, refreshToken)
	if err != nil {
		logger.Log.Infow("refresh rejected", "err", err)
		return "", ErrInvalidToken
	}

	access, err := svc.tokens.GenerateAccess(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", err
	}
	return access, nil
}

func (svc *AuthService) exists(
	ctx context.Context,
	get func(context.Context, string) (*models.UserDB, error),
	value string,
) (bool, error) {
	_, err := get(ctx, value)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repositories.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
