package repository

import (
	"github.com/tahmid-dev/formbuilder-go/internal/domain/payment"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	RecordPayment(p *payment.Payment) error
	ListPaymentsBySubmission(submissionID uint) ([]payment.Payment, error)
	WithTx(tx *gorm.DB) PaymentRepo
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *DBPaymentRepo {
	return &DBPaymentRepo{db: db}
}

func (r *DBPaymentRepo) RecordPayment(p *payment.Payment) error {
	return r.db.Create(p).Error
}

func (r *DBPaymentRepo) ListPaymentsBySubmission(submissionID uint) ([]payment.Payment, error) {
	var payments []payment.Payment
	err := r.db.Where("submission_id = ?", submissionID).Order("id").Find(&payments).Error
	return payments, err
}

func (r *DBPaymentRepo) WithTx(tx *gorm.DB) PaymentRepo {
	return &DBPaymentRepo{db: tx}
}
