package model

import "time"

// KVSlot backs the mysql store: one row per slot key, value is the JSON
// document persisted wholesale.
type KVSlot struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     []byte `gorm:"type:longblob"`
	UpdatedAt time.Time
}

func (KVSlot) TableName() string {
	return "kv_slots"
}
