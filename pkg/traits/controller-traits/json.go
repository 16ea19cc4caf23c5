package controllertraits

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// WriteJSON writes payload exactly as given. The legacy frontend
// endpoints (/api/chat, /api/upload-image, /api/status) predate the
// shared response envelope and their body shapes are pinned by the
// deployed web client, so they bypass the base response writers.
func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.S().Errorf("failed to encode response: %v", err)
	}
}
