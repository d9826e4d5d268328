package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"StaffPortal/internal/cli/bootstrap"
	"StaffPortal/internal/config"

	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// SetLogger задаёт логгер, который получают клиентские сервисы.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

// openServices собирает сервисы по конфигу. Переопределяется в тестах.
var openServices = func(cfg *config.Config) (*bootstrap.Services, error) {
	return bootstrap.Open(cfg, logger)
}

// withServices открывает сервисы на время выполнения fn.
func withServices(cfg *config.Config, fn func(*bootstrap.Services) error) error {
	svcs, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svcs.Close() }()
	return fn(svcs)
}

// printJSON печатает тело ответа с отступами; не-JSON печатается как есть.
func printJSON(raw []byte) {
	if len(bytes.TrimSpace(raw)) == 0 {
		fmt.Fprintln(Out, "(empty response)")
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Fprintln(Out, strings.TrimSpace(string(raw)))
		return
	}
	fmt.Fprintln(Out, buf.String())
}

func printValue(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, string(b))
	return nil
}

// parseFields разбирает аргументы вида key=value.
func parseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid field %q: expected key=value", a)
		}
		fields[k] = v
	}
	return fields, nil
}
