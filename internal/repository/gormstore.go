package repository

import (
	"context"
	"errors"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps slots in the kv_slots table, one row per key. The
// document stays opaque; the table exists so deployments that already run
// MySQL can skip the file backend.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var slot model.KVSlot
	err := s.db.WithContext(ctx).First(&slot, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return slot.Value, true, nil
}

func (s *GormStore) Save(ctx context.Context, key string, value []byte) error {
	slot := model.KVSlot{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&model.KVSlot{}, "`key` = ?", key).Error
}
