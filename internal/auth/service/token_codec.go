package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	apperrors "github.com/allisson/inventory/internal/errors"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// AccessClaims holds the claims embedded in an access token.
// Subject carries the user ID in decimal form; Username and Role are
// informational copies of the account state at issue time.
type AccessClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserID parses the subject claim as a user ID.
// Returns ErrMalformedClaims if the subject is missing or not a valid ID.
func (c *AccessClaims) UserID() (int64, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, authDomain.ErrMalformedClaims
	}
	return userID, nil
}

// JWTTokenCodec implements TokenCodec using HMAC-signed JWTs.
type JWTTokenCodec struct {
	signingKey []byte
	method     jwt.SigningMethod
	expiration time.Duration
}

// Issue creates a signed token for the user, valid for the configured duration.
// Each token carries a unique UUIDv7 jti so individual tokens are identifiable
// in logs even though no server-side token state is kept.
func (j *JWTTokenCodec) Issue(user *userDomain.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(j.expiration)

	claims := &AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.Must(uuid.NewV7()).String(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: user.Username,
		Role:     user.Role,
	}

	token, err := jwt.NewWithClaims(j.method, claims).SignedString(j.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign access token")
	}

	return token, expiresAt, nil
}

// Verify checks the token signature and expiration and returns its claims.
// Signature and expiration are validated before any claim is trusted; tokens
// signed with a different method than the configured one are rejected.
func (j *JWTTokenCodec) Verify(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != j.method.Alg() {
			return nil, authDomain.ErrInvalidToken
		}
		return j.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrTokenExpired
		}
		return nil, authDomain.ErrInvalidToken
	}

	if !parsed.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	return claims, nil
}

// NewJWTTokenCodec creates a token codec for the given signing algorithm,
// key, and token lifetime. Supported algorithms: HS256, HS384, HS512.
func NewJWTTokenCodec(algorithm string, signingKey string, expiration time.Duration) (*JWTTokenCodec, error) {
	var method jwt.SigningMethod

	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, apperrors.New("unsupported signing algorithm: " + algorithm)
	}

	return &JWTTokenCodec{
		signingKey: []byte(signingKey),
		method:     method,
		expiration: expiration,
	}, nil
}
