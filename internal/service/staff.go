package service

import (
	"context"
	"errors"
	"strings"

	"StaffPortal/internal/model"
	"StaffPortal/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMSNVTaken — сотрудник с таким MSNV уже существует.
	ErrMSNVTaken = errors.New("MSNV already in use")
	// ErrInvalidCredentials — неверный MSNV или пароль.
	ErrInvalidCredentials = errors.New("invalid MSNV or password")
	// ErrInvalidInput — не заполнены обязательные поля.
	ErrInvalidInput = errors.New("MSNV and Password are required")
	// ErrNotFound — сотрудник не найден.
	ErrNotFound = repo.ErrNotFound
)

// StaffService инкапсулирует бизнес-логику работы с сотрудниками.
type StaffService struct {
	repo repo.StaffRepository
}

func NewStaffService(r repo.StaffRepository) *StaffService {
	return &StaffService{repo: r}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// SignUp регистрирует сотрудника: проверяет уникальность MSNV и хеширует пароль.
func (s *StaffService) SignUp(ctx context.Context, in model.StaffInput) (*model.Staff, error) {
	msnv := strings.TrimSpace(deref(in.MSNV))
	password := deref(in.Password)
	if msnv == "" || password == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.GetByMSNV(ctx, msnv)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMSNVTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	st := &model.Staff{
		ID:          uuid.NewString(),
		MSNV:        msnv,
		Password:    string(hash),
		HoTenNV:     deref(in.HoTenNV),
		ChucVu:      deref(in.ChucVu),
		DiaChi:      deref(in.DiaChi),
		SoDienThoai: deref(in.SoDienThoai),
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Create — то же, что регистрация, но вызывается авторизованным сотрудником.
func (s *StaffService) Create(ctx context.Context, in model.StaffInput) (*model.Staff, error) {
	return s.SignUp(ctx, in)
}

// SignIn проверяет MSNV и пароль.
func (s *StaffService) SignIn(ctx context.Context, msnv, password string) (*model.Staff, error) {
	st, err := s.repo.GetByMSNV(ctx, strings.TrimSpace(msnv))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(st.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return st, nil
}

func (s *StaffService) List(ctx context.Context) ([]model.Staff, error) {
	return s.repo.List(ctx)
}

func (s *StaffService) Get(ctx context.Context, id string) (*model.Staff, error) {
	return s.repo.GetByID(ctx, id)
}

// Update применяет непустые поля. Смена MSNV проверяется на уникальность, пароль хешируется.
func (s *StaffService) Update(ctx context.Context, id string, in model.StaffInput) (*model.Staff, error) {
	updates := map[string]any{}
	if in.MSNV != nil {
		msnv := strings.TrimSpace(*in.MSNV)
		if msnv == "" {
			return nil, ErrInvalidInput
		}
		other, err := s.repo.GetByMSNV(ctx, msnv)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrMSNVTaken
		}
		updates["msnv"] = msnv
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}
	if in.HoTenNV != nil {
		updates["ho_ten_nv"] = *in.HoTenNV
	}
	if in.ChucVu != nil {
		updates["chuc_vu"] = *in.ChucVu
	}
	if in.DiaChi != nil {
		updates["dia_chi"] = *in.DiaChi
	}
	if in.SoDienThoai != nil {
		updates["so_dien_thoai"] = *in.SoDienThoai
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *StaffService) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}
