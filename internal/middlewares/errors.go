package middlewares

import (
	"encoding/json"
	"net/http"
)

const internalErrorMessage = "Something went wrong, we are working on it"

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
