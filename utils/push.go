package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
)

const expoPushURL = "https://exp.host/--/api/v2/push/send"

// SendExpoPush delivers a push notification to a single Expo push token.
// Errors are logged only; callers treat push delivery as best-effort.
func SendExpoPush(pushToken, title, body string) {
	notification := map[string]interface{}{
		"to":    pushToken,
		"sound": "default",
		"title": title,
		"body":  body,
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		log.Printf("Failed to marshal push payload: %v", err)
		return
	}

	resp, err := http.Post(expoPushURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("Failed to send push notification: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Printf("Push service returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}
}
