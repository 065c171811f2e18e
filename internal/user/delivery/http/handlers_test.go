package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"adminboard/internal/user/repository/inmem"
	"adminboard/internal/user/usecase"
	"adminboard/pkg/paginator"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type respEnvelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type listData struct {
	Items []struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		Status      string `json:"status"`
	} `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newTestRouter(t *testing.T, seedCount int) (*gin.Engine, []string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := &testLogger{}
	users := inmem.SeedUsers(seedCount)
	repo := inmem.New(logger, users)
	uc := usecase.New(logger, repo)
	handler := New(uc, logger)

	r := gin.New()
	handler.RegisterRoutes(r.Group("/api/v1"))

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return r, ids
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listData {
	t.Helper()
	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	var data listData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	return data
}

func TestGetDefaults(t *testing.T) {
	r, _ := newTestRouter(t, 40)

	w := doRequest(r, http.MethodGet, "/api/v1/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	data := decodeList(t, w)
	if len(data.Items) != paginator.DefaultPageSize {
		t.Errorf("items = %d, want %d", len(data.Items), paginator.DefaultPageSize)
	}
	if data.Paginator.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", data.Paginator.CurrentPage)
	}
	if data.Paginator.Total != 40 {
		t.Errorf("Total = %d, want 40", data.Paginator.Total)
	}
	if !data.Paginator.HasNext {
		t.Error("HasNext = false, want true")
	}
}

func TestGetLastPage(t *testing.T) {
	r, _ := newTestRouter(t, 40)

	w := doRequest(r, http.MethodGet, "/api/v1/users?page=3&pageSize=15", "")
	data := decodeList(t, w)

	if len(data.Items) != 10 {
		t.Errorf("items = %d, want 10", len(data.Items))
	}
	if data.Paginator.HasNext {
		t.Error("HasNext = true on last page")
	}
	if !data.Paginator.HasPrev {
		t.Error("HasPrev = false on last page")
	}
}

func TestGetStatusFilter(t *testing.T) {
	r, _ := newTestRouter(t, 40)

	active := decodeList(t, doRequest(r, http.MethodGet, "/api/v1/users?status=active&pageSize=100", ""))
	inactive := decodeList(t, doRequest(r, http.MethodGet, "/api/v1/users?status=inactive&pageSize=100", ""))

	if active.Paginator.Total+inactive.Paginator.Total != 40 {
		t.Errorf("active %d + inactive %d != 40", active.Paginator.Total, inactive.Paginator.Total)
	}
	for _, item := range inactive.Items {
		if item.Status != "inactive" {
			t.Errorf("item %s has status %q in inactive listing", item.ID, item.Status)
		}
	}
}

func TestGetInvalidStatus(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := doRequest(r, http.MethodGet, "/api/v1/users?status=banana", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetQueryFilter(t *testing.T) {
	r, _ := newTestRouter(t, 40)

	data := decodeList(t, doRequest(r, http.MethodGet, "/api/v1/users?query=alice&pageSize=100", ""))
	if len(data.Items) == 0 {
		t.Fatal("no items matched query 'alice'")
	}
	for _, item := range data.Items {
		if !strings.Contains(strings.ToLower(item.DisplayName), "alice") {
			t.Errorf("item %q does not match query", item.DisplayName)
		}
	}
}

func TestDetailNotFound(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := doRequest(r, http.MethodGet, "/api/v1/users/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateStatus(t *testing.T) {
	r, ids := newTestRouter(t, 5)

	w := doRequest(r, http.MethodPatch, "/api/v1/users/"+ids[0]+"/status", `{"status":"inactive"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	var data struct {
		Message string `json:"message"`
		User    struct {
			Status string `json:"status"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if data.User.Status != "inactive" {
		t.Errorf("Status = %q, want inactive", data.User.Status)
	}
	if !strings.Contains(data.Message, "deactivated") {
		t.Errorf("Message = %q, want deactivation confirmation", data.Message)
	}

	// The change must be visible on the next read.
	w = doRequest(r, http.MethodGet, "/api/v1/users/"+ids[0], "")
	if !strings.Contains(w.Body.String(), `"inactive"`) {
		t.Errorf("detail after update = %s", w.Body.String())
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	r, ids := newTestRouter(t, 5)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"missing body", "/api/v1/users/" + ids[0] + "/status", "", http.StatusBadRequest},
		{"status all is not storable", "/api/v1/users/" + ids[0] + "/status", `{"status":"all"}`, http.StatusBadRequest},
		{"unknown status", "/api/v1/users/" + ids[0] + "/status", `{"status":"frozen"}`, http.StatusBadRequest},
		{"unknown user", "/api/v1/users/nope/status", `{"status":"active"}`, http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPatch, tc.path, tc.body)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}
