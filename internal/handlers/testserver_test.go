package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StaffPortal/internal/config"
	"StaffPortal/internal/handlers"
	"StaffPortal/internal/middleware"
	"StaffPortal/internal/repo"
	"StaffPortal/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// newTestServer поднимает полный роутер поверх in-memory SQLite.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	middleware.SetLogger(zap.NewNop().Sugar())
	cfg := &config.Config{AuthSecret: testSecret, TokenTTL: time.Hour, ResourcePath: "/api/staffs"}
	h := handlers.NewHandler(service.NewStaffService(repo.NewStaffRepository(db)), zap.NewNop().Sugar(), cfg)

	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return ts
}

// call выполняет JSON-запрос и возвращает статус и разобранное тело.
func call(t *testing.T, ts *httptest.Server, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(raw)
		}
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

// signUpAndIn регистрирует сотрудника и возвращает его id и токен.
func signUpAndIn(t *testing.T, ts *httptest.Server, msnv, password string) (string, string) {
	t.Helper()
	code, _ := call(t, ts, http.MethodPost, "/api/staffs/auth/signup", "", map[string]string{"MSNV": msnv, "Password": password, "HoTenNV": "Name " + msnv})
	require.Equal(t, http.StatusCreated, code)
	code, body := call(t, ts, http.MethodPost, "/api/staffs/auth/signin", "", map[string]string{"MSNV": msnv, "Password": password})
	require.Equal(t, http.StatusOK, code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	data, _ := body["data"].(map[string]any)
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	return id, token
}
