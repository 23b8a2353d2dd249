package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data, sets the "Content-Type: application/json" header,
// writes statusCode and then the body. It returns the number of body bytes
// written.
//
// If marshaling fails nothing of the payload is sent: the client receives a
// plain 500 and the wrapped marshal error is returned to the caller.
//
//	WriteJSON(w, models.ErrorResponse{...}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
