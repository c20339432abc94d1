package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"AdminBrowseAPI/internal/logger"
	"AdminBrowseAPI/internal/resource"
)

type ListRequest struct {
	Resource string            `json:"resource"`
	Params   map[string]string `json:"params"`
}

type ListResponse struct {
	Count int64            `json:"count"`
	Items []map[string]any `json:"items"`
}

func ListHandler(w http.ResponseWriter, r *http.Request) {
	// Ограничим только POST-запросы
	if r.Method != http.MethodPost {
		logger.Warn("method_not_allowed", map[string]any{
			"endpoint": "/api/list",
			"method":   r.Method,
		})
		http.Error(w, "Only POST allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ListRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("read_body_failed", map[string]any{
			"endpoint": "/api/list",
			"error":    err.Error(),
		})
		http.Error(w, "Failed to read body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("invalid_json", map[string]any{
			"endpoint": "/api/list",
			"error":    err.Error(),
		})
		http.Error(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	res, ok := resource.Registry[req.Resource]
	if !ok {
		http.Error(w, fmt.Sprintf("Resource %s not found", req.Resource), http.StatusNotFound)
		return
	}

	logger.Info("request", map[string]any{
		"endpoint": "/api/list",
		"payload":  json.RawMessage(body),
	})

	count, items, err := Browser.ListResource(r.Context(), res, req.Params)
	if err != nil {
		logger.Error("list_error", map[string]any{
			"endpoint": "/api/list",
			"resource": req.Resource,
			"error":    err.Error(),
		})
		http.Error(w, "Failed to list resource: "+err.Error(), statusForError(err))
		return
	}
	if items == nil {
		items = []map[string]any{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ListResponse{Count: count, Items: items}); err != nil {
		logger.Error("write_response_failed", map[string]any{
			"endpoint": "/api/list",
			"error":    err.Error(),
		})
	}
}
