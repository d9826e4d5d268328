package model

import "time"

// Staff — серверная модель сотрудника. MSNV — табельный номер, он же логин.
type Staff struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	MSNV        string    `gorm:"not null;uniqueIndex" json:"MSNV"`
	Password    string    `gorm:"not null" json:"-"` // bcrypt-хеш
	HoTenNV     string    `json:"HoTenNV"`
	ChucVu      string    `json:"ChucVu"`
	DiaChi      string    `json:"DiaChi"`
	SoDienThoai string    `json:"SoDienThoai"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// StaffInput — входные данные регистрации, создания и обновления.
// nil-поле при обновлении означает «не менять».
type StaffInput struct {
	MSNV        *string `json:"MSNV"`
	Password    *string `json:"Password"`
	HoTenNV     *string `json:"HoTenNV"`
	ChucVu      *string `json:"ChucVu"`
	DiaChi      *string `json:"DiaChi"`
	SoDienThoai *string `json:"SoDienThoai"`
}
