package jwt

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Defaults applied by New.
const (
	DefaultIssuer     = "bookmarker"
	DefaultAccessExp  = 15 * time.Minute
	DefaultRefreshExp = 30 * 24 * time.Hour
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token has expired")
	ErrWrongTokenType    = errors.New("wrong token type")
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// Claims are the custom claims carried by both token kinds.
type Claims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 access and refresh tokens.
type JWT struct {
	secretKey  []byte
	accessExp  time.Duration
	refreshExp time.Duration
	issuer     string
	now        func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(key)
	}
}

// WithAccessExpiration sets the access token lifetime.
func WithAccessExpiration(d time.Duration) Opt {
	return func(j *JWT) {
		j.accessExp = d
	}
}

// WithRefreshExpiration sets the refresh token lifetime.
func WithRefreshExpiration(d time.Duration) Opt {
	return func(j *JWT) {
		j.refreshExp = d
	}
}

// WithIssuer sets the iss claim.
func WithIssuer(issuer string) Opt {
	return func(j *JWT) {
		j.issuer = issuer
	}
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{
		accessExp:  DefaultAccessExp,
		refreshExp: DefaultRefreshExp,
		issuer:     DefaultIssuer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// GenerateAccess creates a short-lived access token for userID.
func (j *JWT) GenerateAccess(ctx context.Context, userID int64) (string, error) {
	return j.generate(userID, TokenTypeAccess, j.accessExp)
}

// GenerateRefresh creates a long-lived refresh token for userID.
func (j *JWT) GenerateRefresh(ctx context.Context, userID int64) (string, error) {
	return j.generate(userID, TokenTypeRefresh, j.refreshExp)
}

func (j *JWT) generate(userID int64, tokenType string, exp time.Duration) (string, error) {
	now := j.now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ParseAccess verifies an access token and returns its claims.
func (j *JWT) ParseAccess(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parse(tokenString, TokenTypeAccess)
}

// ParseRefresh verifies a refresh token and returns its claims.
func (j *JWT) ParseRefresh(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parse(tokenString, TokenTypeRefresh)
}

func (j *JWT) parse(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithIssuer(j.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
