package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Snapshot é a única tabela: uma linha com o documento inteiro.
type Snapshot struct {
	Key       string `gorm:"primaryKey;size:64"`
	Document  string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(cfg config.PostgresConfig) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(ctx context.Context) (*models.Database, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).
		Where("key = ?", snapshotKey).
		First(&snap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var db models.Database
	if err := json.Unmarshal([]byte(snap.Document), &db); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &db, nil
}

func (s *PostgresStore) Save(ctx context.Context, db *models.Database) error {
	data, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	snap := Snapshot{Key: snapshotKey, Document: string(data)}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&snap).Error
}
