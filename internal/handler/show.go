package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"AdminBrowseAPI/internal/logger"
	"AdminBrowseAPI/internal/resource"
)

type ShowRequest struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func ShowHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	res, ok := resource.Registry[req.Resource]
	if !ok {
		http.Error(w, fmt.Sprintf("Resource %s not found", req.Resource), http.StatusNotFound)
		return
	}

	rec, err := Browser.FetchResource(r.Context(), res, req.ID)
	if err != nil {
		logger.Error("show_error", map[string]any{
			"endpoint": "/api/show",
			"resource": req.Resource,
			"error":    err.Error(),
		})
		http.Error(w, "Failed to fetch resource: "+err.Error(), statusForError(err))
		return
	}
	if rec == nil {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		logger.Error("write_response_failed", map[string]any{
			"endpoint": "/api/show",
			"error":    err.Error(),
		})
	}
}
