package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"grocerly_back_end/internal/database"
	"grocerly_back_end/internal/models"
)

const (
	ProfileCacheTTL = 5 * time.Minute
	ProductCacheTTL = 10 * time.Minute
)

// GetProfileFromCache récupère un profil depuis Redis ou ScyllaDB
func GetProfileFromCache(userID string) (*models.Profile, error) {
	ctx := context.Background()
	key := "profile:" + userID

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var p models.Profile
		if json.Unmarshal([]byte(data), &p) == nil {
			return &p, nil
		}
	}

	// 2. Récupérer de ScyllaDB
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	var name, email, phone, address string
	err = session.Query(`SELECT name, email, phone, address FROM profiles WHERE user_id = ?`,
		gocql.UUID(uid)).Scan(&name, &email, &phone, &address)
	if err != nil {
		return nil, err
	}

	p := &models.Profile{
		UserID:  userID,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(p)
	database.Redis.Set(ctx, key, jsonData, ProfileCacheTTL)

	return p, nil
}

// InvalidateProfileCache invalide le cache d'un profil
func InvalidateProfileCache(userID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "profile:"+userID)
}

// InvalidateCatalogCache invalide les listes de produits/catégories en cache
func InvalidateCatalogCache() {
	ctx := context.Background()
	database.Redis.Del(ctx, "products:all", "categories:all")
}
