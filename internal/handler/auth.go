package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/campuslabs/event-registry/internal/model"
)

// Login handles POST /auth/login
//
// Mock authentication: any non-empty email and password pair succeeds and
// receives a signed token. No credentials are verified.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   req.Email,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		Issuer:    "event-registry",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		Success: true,
		Token:   token,
		User:    model.UserInfo{Email: req.Email, Role: "student"},
	})
}
