package repository

import (
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	ListSubmissions(filter submission.ListFilter) ([]submission.Submission, int64, error)
	GetSubmissionByID(id uint) (submission.Submission, error)
	GetSubmissionByUniqueID(uniqueID string) (submission.Submission, error)
	GetSubmissionByPaymentReference(ref string) (submission.Submission, error)
	SaveSubmission(s *submission.Submission) error
	DeleteSubmission(id uint) error
	CountByStatus() (map[string]int64, error)
	CountByStatusForForm(formID uint) (map[string]int64, error)
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) ListSubmissions(filter submission.ListFilter) ([]submission.Submission, int64, error) {
	q := r.db.Model(&submission.Submission{})
	if filter.FormID != 0 {
		q = q.Where("form_id = ?", filter.FormID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.Search != "" {
		q = q.Where("unique_id LIKE ?", "%"+filter.Search+"%")
	}
	if filter.DateFrom != nil {
		q = q.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("created_at <= ?", *filter.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	perPage := filter.PerPage
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = 20
	}

	var subs []submission.Submission
	offset := (page - 1) * perPage
	if err := q.Order("id DESC").Offset(offset).Limit(perPage).Find(&subs).Error; err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *DBSubmissionRepo) GetSubmissionByID(id uint) (submission.Submission, error) {
	var s submission.Submission
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBSubmissionRepo) GetSubmissionByUniqueID(uniqueID string) (submission.Submission, error) {
	var s submission.Submission
	err := r.db.Where("unique_id = ?", uniqueID).First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) GetSubmissionByPaymentReference(ref string) (submission.Submission, error) {
	var s submission.Submission
	err := r.db.Where("payment_reference = ?", ref).First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) SaveSubmission(s *submission.Submission) error {
	return r.db.Save(s).Error
}

func (r *DBSubmissionRepo) DeleteSubmission(id uint) error {
	return r.db.Delete(&submission.Submission{}, id).Error
}

// CountByStatus aggregates submission counts for the admin dashboard.
func (r *DBSubmissionRepo) CountByStatus() (map[string]int64, error) {
	return r.countByStatus(r.db.Model(&submission.Submission{}))
}

// CountByStatusForForm aggregates one form's submission counts.
func (r *DBSubmissionRepo) CountByStatusForForm(formID uint) (map[string]int64, error) {
	return r.countByStatus(r.db.Model(&submission.Submission{}).Where("form_id = ?", formID))
}

func (r *DBSubmissionRepo) countByStatus(q *gorm.DB) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	if err := q.Select("status, count(*) as n").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.N
	}
	return counts, nil
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	return &DBSubmissionRepo{db: tx}
}
