package repository

import (
	"github.com/tahmid-dev/formbuilder-go/internal/domain/setting"
	"gorm.io/gorm"
)

type SettingRepo interface {
	GetSetting(key string) (setting.Setting, error)
	ListSettings() ([]setting.Setting, error)
	ListPublicSettings() ([]setting.Setting, error)
	SaveSetting(s *setting.Setting) error
	WithTx(tx *gorm.DB) SettingRepo
}

type DBSettingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *DBSettingRepo {
	return &DBSettingRepo{db: db}
}

func (r *DBSettingRepo) GetSetting(key string) (setting.Setting, error) {
	var s setting.Setting
	err := r.db.Where("key = ?", key).First(&s).Error
	return s, err
}

func (r *DBSettingRepo) ListSettings() ([]setting.Setting, error) {
	var out []setting.Setting
	err := r.db.Order("category, key").Find(&out).Error
	return out, err
}

func (r *DBSettingRepo) ListPublicSettings() ([]setting.Setting, error) {
	var out []setting.Setting
	err := r.db.Where("is_public = ?", true).Order("category, key").Find(&out).Error
	return out, err
}

func (r *DBSettingRepo) SaveSetting(s *setting.Setting) error {
	return r.db.Save(s).Error
}

func (r *DBSettingRepo) WithTx(tx *gorm.DB) SettingRepo {
	return &DBSettingRepo{db: tx}
}
