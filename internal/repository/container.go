package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Form       FormRepo
	Submission SubmissionRepo
	Payment    PaymentRepo
	Setting    SettingRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Form:       NewFormRepo(db),
		Submission: NewSubmissionRepo(db),
		Payment:    NewPaymentRepo(db),
		Setting:    NewSettingRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Form:       r.Form.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Payment:    r.Payment.WithTx(tx),
		Setting:    r.Setting.WithTx(tx),
		db:         tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
