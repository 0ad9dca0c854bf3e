package models

import "github.com/golang-jwt/jwt/v5"

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FullName string `json:"full_name" validate:"required"`
	UID      string `json:"uid" validate:"required"`
	Phone    string `json:"phone" validate:"required,inmobile"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	UID      string `json:"uid"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse carries a user-facing message in Detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"-"`
}

type Claims struct {
	UserID string `json:"userId"`
	UID    string `json:"uid"`
	jwt.RegisteredClaims
}
