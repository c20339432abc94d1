package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"AdminBrowseAPI/internal/logger"
	"AdminBrowseAPI/internal/resource"
)

type BatchRequest struct {
	Resource string   `json:"resource"`
	IDs      []string `json:"ids"`
}

type BatchResponse struct {
	Items []map[string]any `json:"items"`
}

// BatchHandler отдаёт записи по списку id одним запросом
func BatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST allowed", http.StatusMethodNotAllowed)
		return
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	res, ok := resource.Registry[req.Resource]
	if !ok {
		http.Error(w, fmt.Sprintf("Resource %s not found", req.Resource), http.StatusNotFound)
		return
	}

	items, err := Browser.FetchList(r.Context(), res, req.IDs)
	if err != nil {
		logger.Error("batch_error", map[string]any{
			"endpoint": "/api/batch",
			"resource": req.Resource,
			"error":    err.Error(),
		})
		http.Error(w, "Failed to fetch records: "+err.Error(), statusForError(err))
		return
	}
	if items == nil {
		items = []map[string]any{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(BatchResponse{Items: items}); err != nil {
		logger.Error("write_response_failed", map[string]any{
			"endpoint": "/api/batch",
			"error":    err.Error(),
		})
	}
}
