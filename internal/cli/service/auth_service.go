package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"StaffPortal/internal/cli/repo"

	"go.uber.org/zap"
)

// ErrNoTokenInResponse — сервер ответил на вход без токена.
var ErrNoTokenInResponse = errors.New("no token in sign-in response")

// AuthService — юзкейс-уровень аутентификации для CLI: вход, выход, текущий пользователь.
type AuthService struct {
	staffs  *StaffsService
	users   *UserService
	storage repo.Storage
	logger  *zap.SugaredLogger
}

// NewAuthService собирает сервис аутентификации.
func NewAuthService(staffs *StaffsService, users *UserService, storage repo.Storage, logger *zap.SugaredLogger) *AuthService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AuthService{staffs: staffs, users: users, storage: storage, logger: logger}
}

type signInResponse struct {
	Token string `json:"token"`
}

// Register регистрирует сотрудника и возвращает ответ сервера.
func (s *AuthService) Register(ctx context.Context, data any) (json.RawMessage, error) {
	return s.staffs.SignUp(ctx, data)
}

// Login выполняет вход и сохраняет выданный токен в хранилище.
func (s *AuthService) Login(ctx context.Context, username, password string) (json.RawMessage, error) {
	raw, err := s.staffs.SignIn(ctx, Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	var r signInResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode sign-in response: %w", err)
	}
	if r.Token == "" {
		return nil, ErrNoTokenInResponse
	}
	if err := s.storage.SetItem(repo.TokenKey, r.Token); err != nil {
		return nil, fmt.Errorf("saving token: %w", err)
	}
	s.logger.Infow("signed in", "msnv", username)
	return raw, nil
}

// Logout очищает локальный токен.
func (s *AuthService) Logout() error {
	if err := s.storage.RemoveItem(repo.TokenKey); err != nil {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}

// CurrentUser возвращает текущего пользователя, если он определён.
func (s *AuthService) CurrentUser(ctx context.Context) (User, bool) {
	return s.users.GetCurrentUser(ctx)
}
