package models

import "github.com/golang-jwt/jwt/v5"

// Claims defines the structure of the admin JWT claims.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
