package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"grocerly_back_end/internal/cache"
)

const expoPushURL = "https://exp.host/--/api/v2/push/send"

type expoPushMessage struct {
	To    string            `json:"to"`
	Sound string            `json:"sound"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendPushToAllDevices envoie une notification Expo à tous les appareils
// enregistrés. Fire-and-forget : le catalogue informe, il ne consulte pas,
// et un échec d'envoi ne doit jamais bloquer la mutation qui l'a déclenché.
func SendPushToAllDevices(title, body string) error {
	tokens, err := cache.GetPushTokens()
	if err != nil {
		return fmt.Errorf("lecture tokens push: %v", err)
	}
	if len(tokens) == 0 {
		log.Println("⚠️ Aucun token Expo enregistré, notification ignorée")
		return nil
	}

	messages := make([]expoPushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, expoPushMessage{
			To:    token,
			Sound: "default",
			Title: title,
			Body:  body,
			Data:  map[string]string{"title": title, "body": body},
		})
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest(http.MethodPost, expoPushURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("envoi Expo: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Expo a répondu %d", resp.StatusCode)
	}

	log.Printf("📱 Notification envoyée à %d appareil(s)", len(tokens))
	return nil
}

// NotifyNewProduct prévient tous les appareils qu'un produit vient
// d'être ajouté au catalogue.
func NotifyNewProduct(productName string) {
	if err := SendPushToAllDevices(
		"🆕 Nouveau produit !",
		fmt.Sprintf("%s vient d'arriver dans le magasin.", productName),
	); err != nil {
		log.Printf("⚠️ Erreur notification produit: %v", err)
	}
}
