package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"StaffPortal/internal/cli/api"
	"StaffPortal/internal/cli/auth"
	"StaffPortal/internal/cli/repo"

	"go.uber.org/zap"
)

var (
	// ErrMissingCredential — в хранилище нет токена.
	ErrMissingCredential = errors.New("no token found")
	// ErrMalformedCredential — токен есть, но декодировать его не удалось.
	ErrMalformedCredential = errors.New("malformed token")
	// ErrUnexpectedEnvelope — ответ сервера не содержит объекта data.
	ErrUnexpectedEnvelope = errors.New("unexpected response envelope")
)

// User — запись пользователя в том виде, в каком её вернул сервер.
type User map[string]any

// FailureKind классифицирует исход определения текущего пользователя.
type FailureKind int

const (
	ResolvedOK FailureKind = iota
	MissingCredential
	MalformedCredential
	TransportFailure
)

func (k FailureKind) String() string {
	switch k {
	case ResolvedOK:
		return "ok"
	case MissingCredential:
		return "missing_credential"
	case MalformedCredential:
		return "malformed_credential"
	case TransportFailure:
		return "transport_failure"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Resolution — результат Resolve. При Kind != ResolvedOK User == nil, а Err описывает причину.
type Resolution struct {
	User   User
	UserID string
	Kind   FailureKind
	Err    error
}

// OK сообщает, найден ли пользователь.
func (r Resolution) OK() bool { return r.Kind == ResolvedOK }

// StaffGetter — операция ресурса, через которую загружается пользователь.
type StaffGetter interface {
	Get(ctx context.Context, id string) (json.RawMessage, error)
}

// UserService определяет текущего пользователя по сохранённому токену.
type UserService struct {
	staffs  StaffGetter
	storage repo.Storage
	logger  *zap.SugaredLogger
}

// NewUserService собирает сервис. logger может быть nil.
func NewUserService(staffs StaffGetter, storage repo.Storage, logger *zap.SugaredLogger) *UserService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &UserService{staffs: staffs, storage: storage, logger: logger}
}

// GetCurrentUser возвращает текущего пользователя или (nil, false).
// Любая ошибка логируется один раз и наружу не пробрасывается.
func (s *UserService) GetCurrentUser(ctx context.Context) (User, bool) {
	res := s.Resolve(ctx)
	if !res.OK() {
		s.logger.Warnw("current user unavailable",
			"reason", res.Kind.String(),
			"user_id", res.UserID,
			"error", res.Err,
		)
		return nil, false
	}
	return res.User, true
}

// Resolve выполняет те же шаги, что и GetCurrentUser, но возвращает причину неудачи.
// Сам ничего не логирует.
func (s *UserService) Resolve(ctx context.Context) Resolution {
	token, err := s.storage.GetItem(repo.TokenKey)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			err = fmt.Errorf("%w: %w", ErrMissingCredential, err)
		} else {
			err = ErrMissingCredential
		}
		return Resolution{Kind: MissingCredential, Err: err}
	}
	if token == "" {
		return Resolution{Kind: MissingCredential, Err: ErrMissingCredential}
	}

	claims, err := auth.DecodeToken(token)
	if err != nil {
		return Resolution{Kind: MalformedCredential, Err: fmt.Errorf("%w: %w", ErrMalformedCredential, err)}
	}
	userID := string(claims.UserID)

	raw, err := s.staffs.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, api.ErrTransport) {
			err = fmt.Errorf("%w: %w", api.ErrTransport, err)
		}
		return Resolution{UserID: userID, Kind: TransportFailure, Err: err}
	}

	user, err := unwrapUser(raw)
	if err != nil {
		return Resolution{UserID: userID, Kind: TransportFailure, Err: fmt.Errorf("%w: %w", api.ErrTransport, err)}
	}
	return Resolution{User: user, UserID: userID, Kind: ResolvedOK}
}

// unwrapUser достаёт запись из конверта {"data": {...}}.
// Транспорт уже снял первый уровень (тело ответа), здесь снимается второй.
func unwrapUser(raw json.RawMessage) (User, error) {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedEnvelope, err)
	}
	d := bytes.TrimSpace(env.Data)
	if len(d) == 0 || d[0] != '{' {
		return nil, ErrUnexpectedEnvelope
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var u User
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedEnvelope, err)
	}
	return u, nil
}
