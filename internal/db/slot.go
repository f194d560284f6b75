package db

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one named blob; the match store keeps its whole document in a single slot.
type Slot struct {
	Name      string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (Slot) TableName() string { return "slots" }

// SlotStore reads and writes one slot by name.
type SlotStore struct {
	db   *gorm.DB
	name string
}

func NewSlotStore(db *gorm.DB, name string) *SlotStore { return &SlotStore{db: db, name: name} }

// Load returns nil, nil when the slot has never been written.
func (s *SlotStore) Load(ctx context.Context) ([]byte, error) {
	var sl Slot
	err := s.db.WithContext(ctx).Where("name = ?", s.name).Take(&sl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sl.Value, nil
}

func (s *SlotStore) Save(ctx context.Context, doc []byte) error {
	sl := Slot{Name: s.name, Value: doc}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&sl).Error
}

// MemorySlot keeps the blob in memory (tests, STORE=memory).
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
	Err  error // returned by Save when set
}

func (m *MemorySlot) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemorySlot) Save(_ context.Context, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.data = append([]byte(nil), doc...)
	return nil
}
