package application

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/setting"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

type SettingsService struct {
	Repos *repository.Repos
}

func NewSettingsService(repos *repository.Repos) *SettingsService {
	return &SettingsService{Repos: repos}
}

// Settings returns every configuration row for the admin panel.
func (s *SettingsService) Settings() ([]setting.Setting, error) {
	return s.Repos.Setting.ListSettings()
}

// PublicSettings returns only the rows marked public, for the
// anonymous submission page.
func (s *SettingsService) PublicSettings() ([]setting.Setting, error) {
	return s.Repos.Setting.ListPublicSettings()
}

// UpdateSettings upserts a batch of keyed rows. Type and category are
// closed vocabularies; omitted fields keep their stored values.
func (s *SettingsService) UpdateSettings(items []setting.UpdateInput, updatedBy uint) ([]setting.Setting, error) {
	for _, in := range items {
		if in.Type != "" && !setting.ValidType(in.Type) {
			return nil, ErrInvalidSetting
		}
		if in.Category != "" && !setting.ValidCategory(in.Category) {
			return nil, ErrInvalidSetting
		}
	}

	out := make([]setting.Setting, 0, len(items))
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		for _, in := range items {
			row, err := tx.Setting.GetSetting(in.Key)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				row = setting.Setting{
					Key:      in.Key,
					Type:     setting.TypeString,
					Category: setting.CategoryGeneral,
				}
			}
			row.Value = datatypes.JSON(in.Value)
			if in.Type != "" {
				row.Type = in.Type
			}
			if in.Category != "" {
				row.Category = in.Category
			}
			if in.Description != nil {
				row.Description = *in.Description
			}
			if in.IsPublic != nil {
				row.IsPublic = *in.IsPublic
			}
			row.UpdatedBy = updatedBy
			if err := tx.Setting.SaveSetting(&row); err != nil {
				return err
			}
			out = append(out, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentMethods returns the enabled payment surface. With no stored
// row every method defaults to enabled.
func (s *SettingsService) PaymentMethods() (setting.PaymentMethodConfig, error) {
	cfg := setting.PaymentMethodConfig{Stripe: true, Bkash: true, BankTransfer: true}

	row, err := s.Repos.Setting.GetSetting(setting.KeyPaymentMethods)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(row.Value, &cfg); err != nil {
		return setting.PaymentMethodConfig{}, err
	}
	return cfg, nil
}

// UpdatePaymentMethods stores the enabled payment surface.
func (s *SettingsService) UpdatePaymentMethods(cfg setting.PaymentMethodConfig, updatedBy uint) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	row, err := s.Repos.Setting.GetSetting(setting.KeyPaymentMethods)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		row = setting.Setting{
			Key:      setting.KeyPaymentMethods,
			Type:     setting.TypeJSON,
			Category: setting.CategoryPayment,
			IsPublic: true,
		}
	}
	row.Value = datatypes.JSON(raw)
	row.UpdatedBy = updatedBy
	return s.Repos.Setting.SaveSetting(&row)
}
