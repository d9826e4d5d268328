package repo

import (
	"context"
	"errors"

	"StaffPortal/internal/model"

	"gorm.io/gorm"
)

// StaffRepository минимальный контракт доступа к сотрудникам.
type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) error
	List(ctx context.Context) ([]model.Staff, error)
	GetByID(ctx context.Context, id string) (*model.Staff, error)
	GetByMSNV(ctx context.Context, msnv string) (*model.Staff, error)
	// Update применяет изменения и возвращает обновлённую запись.
	Update(ctx context.Context, id string, updates map[string]any) (*model.Staff, error)
	Delete(ctx context.Context, id string) error
	// DeleteAll удаляет всех сотрудников и возвращает число удалённых.
	DeleteAll(ctx context.Context) (int64, error)
}

type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepository создаёт gorm-реализацию репозитория сотрудников.
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *staffRepo) List(ctx context.Context) ([]model.Staff, error) {
	var out []model.Staff
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *staffRepo) first(ctx context.Context, query string, arg any) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).Where(query, arg).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*model.Staff, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *staffRepo) GetByMSNV(ctx context.Context, msnv string) (*model.Staff, error) {
	return r.first(ctx, "msnv = ?", msnv)
}

func (r *staffRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Staff, error) {
	if len(updates) > 0 {
		tx := r.db.WithContext(ctx).Model(&model.Staff{}).Where("id = ?", id).Updates(updates)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Staff{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *staffRepo) DeleteAll(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Staff{})
	return tx.RowsAffected, tx.Error
}
