package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"grocerly_back_end/internal/database"
)

// UploadProductImage stocke une image produit dans le bucket MinIO
// et retourne son chemin objet (pas une URL signée).
func UploadProductImage(file *multipart.FileHeader) (string, error) {
	if database.MinioClient == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := "products/" + file.Filename

	_, err = database.MinioClient.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return objectName, nil
}

// GenerateSignedURL génère une URL signée temporaire pour une image produit.
// Accepte soit un chemin objet, soit une URL complète du bucket.
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	if database.MinioClient == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")

	key := objectPath
	prefix := fmt.Sprintf("http://%s/%s/", os.Getenv("MINIO_ENDPOINT"), bucket)
	key = strings.TrimPrefix(key, prefix)

	presignedURL, err := database.MinioClient.PresignedGetObject(
		ctx,
		bucket,
		key,
		duration,
		make(url.Values),
	)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
