package bootstrap

import (
	"fmt"

	"StaffPortal/internal/cli/api"
	"StaffPortal/internal/cli/crypto"
	"StaffPortal/internal/cli/repo"
	fsrepo "StaffPortal/internal/cli/repo/fs"
	reposqlite "StaffPortal/internal/cli/repo/sqlite"
	"StaffPortal/internal/cli/service"
	"StaffPortal/internal/config"

	"go.uber.org/zap"
)

// Services — собранные клиентские сервисы.
type Services struct {
	Storage repo.Storage
	Staffs  *service.StaffsService
	Users   *service.UserService
	Auth    *service.AuthService

	closers []func() error
}

// Close освобождает ресурсы хранилища.
func (s *Services) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenStorage открывает локальное хранилище согласно конфигу.
// Вторым значением возвращается функция закрытия (может быть no-op).
// При EncryptStorage значения шифруются ключом из StorageDir.
func OpenStorage(cfg *config.Config) (repo.Storage, func() error, error) {
	st, closeFn, err := openBackend(cfg)
	if err != nil || !cfg.EncryptStorage {
		return st, closeFn, err
	}
	key, err := crypto.LoadOrCreateKey(cfg.StorageDir)
	if err != nil {
		_ = closeFn()
		return nil, nil, fmt.Errorf("load storage key: %w", err)
	}
	sealed, err := crypto.NewSealedStorage(st, key)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return sealed, closeFn, nil
}

func openBackend(cfg *config.Config) (repo.Storage, func() error, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		st, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open client db: %w", err)
		}
		if err := st.Migrate(); err != nil {
			_ = st.Close()
			return nil, nil, fmt.Errorf("migrate client db: %w", err)
		}
		return st, st.Close, nil
	default:
		return fsrepo.FSStore{Dir: cfg.StorageDir}, func() error { return nil }, nil
	}
}

// Open собирает хранилище, транспорт и сервисы клиента.
func Open(cfg *config.Config, logger *zap.SugaredLogger) (*Services, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	storage, closeStorage, err := OpenStorage(cfg)
	if err != nil {
		return nil, err
	}
	client := api.NewClient(cfg.ResourceURL(),
		api.WithTimeout(cfg.RequestTimeout),
		api.WithTokenStorage(storage),
	)
	staffs := service.NewStaffsService(client)
	users := service.NewUserService(staffs, storage, logger)
	return &Services{
		Storage: storage,
		Staffs:  staffs,
		Users:   users,
		Auth:    service.NewAuthService(staffs, users, storage, logger),
		closers: []func() error{closeStorage},
	}, nil
}
