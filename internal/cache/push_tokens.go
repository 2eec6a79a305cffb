package cache

import (
	"context"
	"strings"

	"grocerly_back_end/internal/database"
)

const pushTokensKey = "push:tokens"

// RegisterPushToken enregistre un token Expo pour les notifications catalogue.
// Seuls les tokens Expo valides sont acceptés.
func RegisterPushToken(token string) bool {
	if !strings.HasPrefix(token, "ExponentPushToken") {
		return false
	}
	ctx := context.Background()
	database.Redis.SAdd(ctx, pushTokensKey, token)
	return true
}

// GetPushTokens retourne tous les tokens Expo enregistrés
func GetPushTokens() ([]string, error) {
	ctx := context.Background()
	return database.Redis.SMembers(ctx, pushTokensKey).Result()
}

// RemovePushToken retire un token (désinscription ou token expiré)
func RemovePushToken(token string) {
	ctx := context.Background()
	database.Redis.SRem(ctx, pushTokensKey, token)
}
