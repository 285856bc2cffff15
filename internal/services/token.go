package services

import (
	"errors"
	"strconv"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenKind distinguishes the two session token flavors. A refresh
// token is never accepted where an access token is required, and vice
// versa.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// Claims is the payload embedded in every signed token. Within a
// request's lifetime the claims are the sole source of truth for
// username and role; identity existence and active status are
// re-checked at the access-control layer, not here.
type Claims struct {
	Username string           `json:"username"`
	Role     models.AdminRole `json:"role"`
	Kind     TokenKind        `json:"kind"`
	jwt.RegisteredClaims
}

// AdminID returns the token subject as an admin id.
func (c *Claims) AdminID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return uint(id), nil
}

// TokenPair is the result of a successful issuance.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// TokenService issues and verifies signed session tokens. It is
// stateless beyond the signing secret and the clock: there is no
// revocation list, so an issued token stays verifiable until expiry
// even after a password change or account deactivation. Role-gated
// operations compensate by re-resolving the account on every call.
type TokenService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.JWT.Secret),
		issuer:     cfg.JWT.Issuer,
		accessTTL:  cfg.JWT.AccessTTL(),
		refreshTTL: cfg.JWT.RefreshTTL(),
		now:        time.Now,
	}
}

// Issue signs an access/refresh token pair for the given identity.
func (s *TokenService) Issue(adminID uint, username string, role models.AdminRole) (*TokenPair, error) {
	access, err := s.sign(adminID, username, role, TokenAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(adminID, username, role, TokenRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *TokenService) sign(adminID uint, username string, role models.AdminRole, kind TokenKind, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &Claims{
		Username: username,
		Role:     role,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(adminID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, requiring it to be of the given
// kind. Expired tokens fail with ErrTokenExpired; malformed signatures,
// bad subjects, and kind mismatches fail with ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string, kind TokenKind) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid || claims.Kind != kind {
		return nil, ErrTokenInvalid
	}

	if _, err := claims.AdminID(); err != nil {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
