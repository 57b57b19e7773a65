// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
)

type contextKey string

const (
	storeIDKey contextKey = "store_id"
	userIDKey  contextKey = "user_id"
)

// SetStoreID sets the pulling store's ID in the context
func SetStoreID(ctx context.Context, storeID string) context.Context {
	return context.WithValue(ctx, storeIDKey, storeID)
}

// GetStoreID retrieves the pulling store's ID from the context
func GetStoreID(ctx context.Context) (string, bool) {
	storeID, ok := ctx.Value(storeIDKey).(string)
	return storeID, ok
}

// SetUserID sets the user ID in the context
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID retrieves the user ID from the context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
