package repository

import (
	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"gorm.io/gorm"
)

type FormRepo interface {
	ListForms(page, limit int) ([]form.Form, int64, error)
	ListFormsByUser(userID uint, page, limit int) ([]form.Form, int64, error)
	GetFormByID(id uint) (form.Form, error)
	GetFormByCustomURL(customURL string) (form.Form, error)
	SaveForm(f *form.Form) error
	DeleteForm(id uint) error
	CountSubmissions(formID uint) (int64, error)
	IncrementSubmissionCount(formID uint) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) ListForms(page, limit int) ([]form.Form, int64, error) {
	return r.list(r.db.Model(&form.Form{}), page, limit)
}

func (r *DBFormRepo) ListFormsByUser(userID uint, page, limit int) ([]form.Form, int64, error) {
	return r.list(r.db.Model(&form.Form{}).Where("user_id = ?", userID), page, limit)
}

func (r *DBFormRepo) list(q *gorm.DB, page, limit int) ([]form.Form, int64, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []form.Form
	offset := (page - 1) * limit
	if err := q.Order("id DESC").Offset(offset).Limit(limit).Find(&forms).Error; err != nil {
		return nil, 0, err
	}
	return forms, total, nil
}

func (r *DBFormRepo) GetFormByID(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.First(&f, id).Error
	return f, err
}

func (r *DBFormRepo) GetFormByCustomURL(customURL string) (form.Form, error) {
	var f form.Form
	err := r.db.Where("custom_url = ?", customURL).First(&f).Error
	return f, err
}

func (r *DBFormRepo) SaveForm(f *form.Form) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) DeleteForm(id uint) error {
	return r.db.Delete(&form.Form{}, id).Error
}

func (r *DBFormRepo) CountSubmissions(formID uint) (int64, error) {
	var count int64
	err := r.db.Model(&submission.Submission{}).Where("form_id = ?", formID).Count(&count).Error
	return count, err
}

func (r *DBFormRepo) IncrementSubmissionCount(formID uint) error {
	return r.db.Model(&form.Form{}).
		Where("id = ?", formID).
		UpdateColumn("submission_count", gorm.Expr("submission_count + 1")).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}
