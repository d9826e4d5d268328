package commands

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"StaffPortal/internal/config"
	"StaffPortal/internal/handlers"
	serverrepo "StaffPortal/internal/repo"
	serverservice "StaffPortal/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testResourcePath = "/api/staffs"

// testConfig — клиентский конфиг с файловым хранилищем во временном каталоге.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:      serverURL,
		ResourcePath:   testResourcePath,
		RequestTimeout: 5 * time.Second,
		StorageBackend: config.StorageFS,
		StorageDir:     t.TempDir(),
	}
}

// newBackend поднимает справочный сервер сотрудников поверх in-memory SQLite.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := serverrepo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	cfg := &config.Config{AuthSecret: "cli-test", TokenTTL: time.Hour, ResourcePath: testResourcePath}
	h := handlers.NewHandler(serverservice.NewStaffService(serverrepo.NewStaffRepository(db)), zap.NewNop().Sugar(), cfg)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return ts
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
