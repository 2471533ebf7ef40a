// Package localstore is the device-local persistence layer: a small settings
// table for string preferences plus seeded admin accounts. SQLite backs the
// on-device case; a postgres DSN works when the gateway runs hosted.
package localstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" driver the gorm config names.
	_ "modernc.org/sqlite"
)

var (
	// ErrNoValue reports a missing settings key.
	ErrNoValue = errors.New("no value stored")

	// ErrDuplicateAdmin reports a second account under an existing email.
	ErrDuplicateAdmin = errors.New("admin email already registered")
)

type setting struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (setting) TableName() string { return "settings" }

// AdminAccount is a seeded back-office credential fixture.
type AdminAccount struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Name         string    `gorm:"column:name"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (AdminAccount) TableName() string { return "admin_accounts" }

type Store struct {
	db *gorm.DB
}

// Open connects by DSN scheme, like the rest of the stack: postgres:// goes
// to PostgreSQL, anything else is treated as a SQLite path.
func Open(dsn string) (*Store, error) {
	var (
		db  *gorm.DB
		err error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(
			gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
			&gorm.Config{},
		)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&setting{}, &AdminAccount{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get reads one settings key. ErrNoValue when the key was never written.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var row setting
	if err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoValue
		}
		return "", err
	}
	return row.Value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	row := setting{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Save(&row).Error
}

// Delete removes the key outright. Missing keys are fine.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&setting{}, "key = ?", key).Error
}

func (s *Store) AdminByEmail(ctx context.Context, email string) (*AdminAccount, error) {
	var row AdminAccount
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store) SaveAdmin(ctx context.Context, acc *AdminAccount) error {
	err := s.db.WithContext(ctx).Save(acc).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateAdmin
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateAdmin
	}
	return err
}
