package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"AdminBrowseAPI/internal/browse"
	"AdminBrowseAPI/internal/countcache"
	"AdminBrowseAPI/internal/resource"

	"github.com/Masterminds/squirrel"
)

type stubExec struct {
	items []map[string]any
	count int64
}

func (e *stubExec) ExecuteAll(context.Context, squirrel.SelectBuilder, browse.ExecOptions) ([]map[string]any, error) {
	return e.items, nil
}

func (e *stubExec) ExecuteOne(context.Context, squirrel.SelectBuilder, browse.ExecOptions) (map[string]any, error) {
	if len(e.items) == 0 {
		return nil, nil
	}
	return e.items[0], nil
}

func (e *stubExec) ExecuteCount(context.Context, squirrel.SelectBuilder, browse.ExecOptions) (int64, error) {
	return e.count, nil
}

type nullStore struct{}

func (nullStore) Get(context.Context, string) (int64, bool, error) { return 0, false, nil }
func (nullStore) Put(context.Context, string, int64, time.Duration) error {
	return nil
}

func setupHandlerTest(t *testing.T, exec *stubExec) {
	t.Helper()
	resource.Registry = map[string]*resource.Resource{
		"users": {
			Name:  "users",
			Table: "users",
			Fields: []resource.Field{
				{Name: "id", Type: "int"},
				{Name: "name", Type: "string"},
			},
		},
	}
	t.Cleanup(func() { resource.Registry = map[string]*resource.Resource{} })
	Init(browse.New(exec, countcache.New(nullStore{}, 100000, 600*time.Second)))
}

func TestListHandler_MethodNotAllowed(t *testing.T) {
	setupHandlerTest(t, &stubExec{})

	req := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	w := httptest.NewRecorder()
	ListHandler(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestListHandler_UnknownResource(t *testing.T) {
	setupHandlerTest(t, &stubExec{})

	body := `{"resource": "ghosts", "params": {}}`
	req := httptest.NewRequest(http.MethodPost, "/api/list", strings.NewReader(body))
	w := httptest.NewRecorder()
	ListHandler(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestListHandler_ReturnsCountAndItems(t *testing.T) {
	setupHandlerTest(t, &stubExec{
		items: []map[string]any{{"id": 1, "name": "Bob"}},
		count: 7,
	})

	body := `{"resource": "users", "params": {"name": "Bob"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/list", strings.NewReader(body))
	w := httptest.NewRecorder()
	ListHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body: %s", w.Code, w.Body.String())
	}

	var resp ListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 7 || len(resp.Items) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestListHandler_MalformedPageIsBadRequest(t *testing.T) {
	setupHandlerTest(t, &stubExec{})

	body := `{"resource": "users", "params": {"page": "abc"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/list", strings.NewReader(body))
	w := httptest.NewRecorder()
	ListHandler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}
