package handler

import (
	"encoding/json"
	"net/http"
)

// SubmitResponse — JSON ответ эндпоинта отправки анкеты
type SubmitResponse struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error,omitempty"`
	AttachmentErrors []string `json:"attachmentErrors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, SubmitResponse{Success: false, Error: msg})
}
