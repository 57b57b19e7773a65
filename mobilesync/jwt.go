// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/edmofro/mobile/internal/auth"
)

// JWTAuth signs and verifies the bearer tokens the pull transport uses.
// The feed server partitions its queue per store, so the store id travels
// in the token rather than in the URL.
type JWTAuth struct {
	secret []byte
}

// NewJWTAuth creates a JWT authenticator from a shared HS256 secret.
func NewJWTAuth(secret string) *JWTAuth {
	return &JWTAuth{secret: []byte(secret)}
}

// JWTClaims are the claims a pull token carries: the user in the standard
// sub claim and the pulling store in sid.
type JWTClaims struct {
	StoreID string `json:"sid"`
	jwt.RegisteredClaims
}

// GenerateToken issues a pull token for a user on one store.
func (j *JWTAuth) GenerateToken(userID, storeID string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		StoreID: storeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "mobilesync",
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateToken verifies a pull token and returns its claims.
func (j *JWTAuth) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.StoreID == "" {
		return nil, fmt.Errorf("missing sid (store ID) in token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("missing sub (user ID) in token")
	}
	return claims, nil
}

// StoreIDFromRequest extracts the pulling store's id from the request's
// bearer token.
func (j *JWTAuth) StoreIDFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header required")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", fmt.Errorf("bearer token required")
	}
	claims, err := j.ValidateToken(tokenString)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	return claims.StoreID, nil
}

// Middleware returns an HTTP middleware that rejects requests without a
// valid pull token and puts the user and store ids on the context.
func (j *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
			return
		}
		claims, err := j.ValidateToken(bearerToken[1])
		if err != nil {
			tokenPrefix := bearerToken[1]
			if len(tokenPrefix) > 20 {
				tokenPrefix = tokenPrefix[:20]
			}
			slog.Error("JWT validation failed", "error", err, "token_prefix", tokenPrefix)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		ctx := auth.SetUserID(r.Context(), claims.Subject)
		ctx = auth.SetStoreID(ctx, claims.StoreID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
