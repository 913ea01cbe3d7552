package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse пишет JSON ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("write json response:", err)
	}
}

// WriteError пишет ответ об ошибке в формате {success:false, message}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
