package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tahmid-dev/formbuilder-go/internal/config"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/payment"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/setting"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
)

// Open connects to Postgres when DB_HOST is set, otherwise falls back
// to a local SQLite file so the server runs without infrastructure.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.AppDebug {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	var (
		conn *gorm.DB
		err  error
	)
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		conn, err = gorm.Open(postgres.Open(dsn), gormCfg)
	} else {
		log.WithField("path", cfg.SQLitePath).Info("DB_HOST not set, using sqlite")
		conn, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return conn, nil
}

// Migrate applies the schema for every persisted entity.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&user.User{},
		&form.Form{},
		&submission.Submission{},
		&payment.Payment{},
		&setting.Setting{},
	)
}
