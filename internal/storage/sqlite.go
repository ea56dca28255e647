package storage

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotKey is the single key the whole state tree is stored under.
const snapshotKey = "finance-storage"

type snapshotRow struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string {
	return "snapshots"
}

// SQLite stores snapshots in a single-row sqlite table.
type SQLite struct {
	db *gorm.DB
}

// Connect opens the sqlite database and migrates the snapshot table.
func Connect(dsn string) (*SQLite, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(snapshotRow{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Load returns the stored snapshot, or ErrNoSnapshot if none exists.
func (s *SQLite) Load(ctx context.Context) ([]byte, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", snapshotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, lowLevelError(err)
	}

	return row.Data, nil
}

// Save overwrites the stored snapshot.
func (s *SQLite) Save(ctx context.Context, data []byte) error {
	row := snapshotRow{
		Key:  snapshotKey,
		Data: data,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return lowLevelError(err)
	}

	return nil
}

// Clear drops the stored snapshot. Clearing an empty store is not an error.
func (s *SQLite) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).Delete(&snapshotRow{}, "key = ?", snapshotKey).Error
	if err != nil {
		return lowLevelError(err)
	}

	return nil
}

// Ping checks the database connection.
func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// lowLevelError logs driver errors and replaces them with ErrStorage so
// that driver internals do not leak to end users.
func lowLevelError(err error) error {
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrStorage
	}

	return err
}
