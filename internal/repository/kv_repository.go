package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository is the profile-scoped key-value store.
type KVRepository interface {
	// Get returns domain.ErrNotFound when the key has never been written.
	Get(ctx context.Context, profileID uuid.UUID, key string) (string, error)
	// Put inserts or fully replaces the value.
	Put(ctx context.Context, profileID uuid.UUID, key, value string) error
	// Update reads the value, passes it to fn and stores what fn returns,
	// all in one transaction holding the row lock where the database
	// supports it. found is false when the key has never been written.
	Update(ctx context.Context, profileID uuid.UUID, key string, fn func(old string, found bool) (string, error)) error
}

type kvRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) KVRepository {
	return &kvRepository{db: db}
}

func (r *kvRepository) Get(ctx context.Context, profileID uuid.UUID, key string) (string, error) {
	var entry domain.StoreEntry
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND store_key = ?", profileID, key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

func (r *kvRepository) Put(ctx context.Context, profileID uuid.UUID, key, value string) error {
	return upsert(r.db.WithContext(ctx), profileID, key, value)
}

func (r *kvRepository) Update(ctx context.Context, profileID uuid.UUID, key string, fn func(old string, found bool) (string, error)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry domain.StoreEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("profile_id = ? AND store_key = ?", profileID, key).
			First(&entry).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		value, err := fn(entry.Value, found)
		if err != nil {
			return err
		}
		return upsert(tx, profileID, key, value)
	})
}

func upsert(db *gorm.DB, profileID uuid.UUID, key, value string) error {
	entry := domain.StoreEntry{ProfileID: profileID, Key: key, Value: value}
	return db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "store_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}
