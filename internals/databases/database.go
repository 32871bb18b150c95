package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"youthcentre_backend/internals/configs"
	"youthcentre_backend/internals/logger"
)

var DB *gorm.DB

func ConnectDB(cfg *configs.Config) {
	log := logger.Named("database")
	log.Info("connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(cfg.LogDebug),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	DB = db
	log.Info("DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Log.Warnf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate runs AutoMigrate over every registered model.
func Migrate(models ...interface{}) {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		logger.Log.Warnf("pgcrypto extension: %v", err)
	}
	if err := DB.AutoMigrate(models...); err != nil {
		logger.Log.Fatalf("failed to migrate database: %v", err)
	}
	logger.Log.Infof("migrated %d models", len(models))
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			logger.Log.Warnf("warm-up ping err: %v", err)
		}
	}()
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
