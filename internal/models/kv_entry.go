package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one persisted blob of the SQL key-value backend.
type KVEntry struct {
	Key       string         `gorm:"column:kv_key;size:64;primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVEntry) TableName() string { return "kv_entries" }
