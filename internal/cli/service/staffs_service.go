package service

import (
	"context"
	"encoding/json"
	"net/url"

	"StaffPortal/internal/cli/api"
)

// DefaultStaffsPath — базовый путь ресурса сотрудников на сервере.
const DefaultStaffsPath = "/api/staffs"

// Transport — HTTP-транспорт, к которому обращаются сервисы. Реализуется *api.Client.
type Transport interface {
	Get(ctx context.Context, path string) (*api.Response, error)
	Post(ctx context.Context, path string, body any) (*api.Response, error)
	Put(ctx context.Context, path string, body any) (*api.Response, error)
	Delete(ctx context.Context, path string) (*api.Response, error)
}

var _ Transport = (*api.Client)(nil)

// Credentials — логин и пароль сотрудника.
type Credentials struct {
	Username string
	Password string
}

// signInRequest — тело запроса входа в формате бэкенда (MSNV — табельный номер сотрудника).
type signInRequest struct {
	MSNV     string `json:"MSNV"`
	Password string `json:"Password"`
}

// StaffsService — фасад над ресурсом /api/staffs. Все методы возвращают тело ответа
// без изменений; ошибки транспорта пробрасываются вызывающему.
type StaffsService struct {
	api Transport
}

// NewStaffsService создаёт сервис поверх транспорта, привязанного к ресурсу сотрудников.
func NewStaffsService(t Transport) *StaffsService {
	return &StaffsService{api: t}
}

func body(resp *api.Response, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func itemPath(id string) string {
	return "/" + url.PathEscape(id)
}

// SignUp регистрирует сотрудника.
func (s *StaffsService) SignUp(ctx context.Context, data any) (json.RawMessage, error) {
	return body(s.api.Post(ctx, "/auth/signup", data))
}

// SignIn выполняет вход. Поля переименовываются под контракт бэкенда: username → MSNV, password → Password.
func (s *StaffsService) SignIn(ctx context.Context, c Credentials) (json.RawMessage, error) {
	return body(s.api.Post(ctx, "/auth/signin", signInRequest{MSNV: c.Username, Password: c.Password}))
}

// GetAll возвращает список сотрудников.
func (s *StaffsService) GetAll(ctx context.Context) (json.RawMessage, error) {
	return body(s.api.Get(ctx, "/"))
}

// Create создаёт сотрудника.
func (s *StaffsService) Create(ctx context.Context, data any) (json.RawMessage, error) {
	return body(s.api.Post(ctx, "/", data))
}

// DeleteAll удаляет всех сотрудников.
func (s *StaffsService) DeleteAll(ctx context.Context) (json.RawMessage, error) {
	return body(s.api.Delete(ctx, "/"))
}

// Get возвращает сотрудника по id.
func (s *StaffsService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return body(s.api.Get(ctx, itemPath(id)))
}

// Update обновляет сотрудника по id.
func (s *StaffsService) Update(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return body(s.api.Put(ctx, itemPath(id), data))
}

// Delete удаляет сотрудника по id.
func (s *StaffsService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return body(s.api.Delete(ctx, itemPath(id)))
}
