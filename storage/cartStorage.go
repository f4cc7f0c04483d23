package storage

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartStorage is profile-local key-value persistence for the
// serialized cart. Absence of a key is not an error (first visit);
// corruption is the cart layer's problem, not storage's.
type CartStorage interface {
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// CartRecord is one persisted snapshot. The whole cart is serialized
// into a single JSON document per key.
type CartRecord struct {
	Key       string         `gorm:"primaryKey"`
	Snapshot  datatypes.JSON `json:"snapshot"`
	UpdatedAt time.Time
}

type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if db == nil {
		return nil, errors.New("db must be non-nil")
	}
	return &GormStorage{db: db}, nil
}

func (s *GormStorage) Load(key string) ([]byte, bool, error) {
	var record CartRecord
	err := s.db.First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(record.Snapshot), true, nil
}

func (s *GormStorage) Save(key string, data []byte) error {
	record := CartRecord{Key: key, Snapshot: datatypes.JSON(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"snapshot", "updated_at"}),
	}).Create(&record).Error
}

func (s *GormStorage) Delete(key string) error {
	return s.db.Delete(&CartRecord{}, "key = ?", key).Error
}
