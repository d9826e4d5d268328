package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"StaffPortal/internal/cli/api"
	"StaffPortal/internal/cli/repo"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recorded — запрос, пришедший на тестовый сервер.
type recorded struct {
	Method  string
	Path    string
	RawPath string
	Body    string
}

// fakeBackend — httptest-сервер с подсчётом запросов.
type fakeBackend struct {
	*httptest.Server
	mu   sync.Mutex
	reqs []recorded
}

func (b *fakeBackend) requests() []recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]recorded(nil), b.reqs...)
}

func newFakeBackend(t *testing.T, status int, body string) *fakeBackend {
	t.Helper()
	b := &fakeBackend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.reqs = append(b.reqs, recorded{Method: r.Method, Path: r.URL.Path, RawPath: r.URL.EscapedPath(), Body: string(buf)})
		b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(b.Close)
	return b
}

func newStaffs(baseURL string, store repo.Storage) *StaffsService {
	return NewStaffsService(api.NewClient(baseURL+DefaultStaffsPath, api.WithTokenStorage(store)))
}

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func tokenFor(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}
