package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// GenericFailureMessage is the single error body of the counter endpoints.
// Repository failures are deliberately collapsed into it so nothing about
// the backend leaks to callers.
const GenericFailureMessage = "Ooops! Something broke from our end. Please retry"

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status": statusCode,
		"error":  message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
