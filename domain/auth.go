package domain

import (
	"github.com/golang-jwt/jwt/v4"
)

// Claims are carried by bearer tokens issued by the identity provider.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
