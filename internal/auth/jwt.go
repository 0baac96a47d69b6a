package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Actor is the board member a client acts as after "switch user". It only
// drives attribution; there is no password behind it.
type Actor struct {
	BoardID  uuid.UUID
	UserID   uuid.UUID
	UserName string
}

type actorClaims struct {
	BoardID  string `json:"board_id"`
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs an HS256 token for the actor and returns it with its expiry.
func (i *TokenIssuer) Issue(actor Actor) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := actorClaims{
		BoardID:  actor.BoardID.String(),
		UserName: actor.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (i *TokenIssuer) Parse(tokenStr string) (Actor, error) {
	var claims actorClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Actor{}, ErrInvalidToken
	}

	boardID, err := uuid.Parse(claims.BoardID)
	if err != nil {
		return Actor{}, ErrInvalidClaims
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil || claims.UserName == "" {
		return Actor{}, ErrInvalidClaims
	}

	return Actor{BoardID: boardID, UserID: userID, UserName: claims.UserName}, nil
}
