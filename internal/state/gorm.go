package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/loungeshop/storefront/internal/models"
)

type sessionRecord struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   string `gorm:"not null"`
	Username string
	Email    string
	Role     string
	Token    string `gorm:"not null"`
}

type cartLineRecord struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Position  int    `gorm:"index;not null"`
	ProductID string `gorm:"uniqueIndex;not null"`
	Name      string
	Price     string
	Image     string
	Available bool
	Quantity  uint `gorm:"check:quantity>0"`
}

type browsingSession struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"not null"`
}

// GormStore keeps the client state in a local sqlite file, the desktop
// stand-in for browser storage.
type GormStore struct {
	DB *gorm.DB
}

func OpenGorm(path string) (*GormStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if err := db.AutoMigrate(&sessionRecord{}, &cartLineRecord{}, &browsingSession{}); err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) LoadSession() (*SessionState, error) {
	var rec sessionRecord
	if err := s.DB.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &SessionState{
		User: models.User{
			ID:       rec.UserID,
			Username: rec.Username,
			Email:    rec.Email,
			Role:     rec.Role,
		},
		Token: rec.Token,
	}, nil
}

func (s *GormStore) SaveSession(sess *SessionState) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&sessionRecord{}).Error; err != nil {
			return err
		}
		rec := sessionRecord{
			UserID:   sess.User.ID,
			Username: sess.User.Username,
			Email:    sess.User.Email,
			Role:     sess.User.Role,
			Token:    sess.Token,
		}
		return tx.Create(&rec).Error
	})
}

func (s *GormStore) DeleteSession() error {
	return s.DB.Where("1 = 1").Delete(&sessionRecord{}).Error
}

func (s *GormStore) LoadCart() ([]models.CartLine, error) {
	var recs []cartLineRecord
	if err := s.DB.Order("position").Find(&recs).Error; err != nil {
		return nil, err
	}
	lines := make([]models.CartLine, 0, len(recs))
	for _, rec := range recs {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("corrupt cart price %q: %w", rec.Price, err)
		}
		lines = append(lines, models.CartLine{
			ProductID: rec.ProductID,
			Name:      rec.Name,
			Price:     price,
			Image:     rec.Image,
			Available: rec.Available,
			Quantity:  rec.Quantity,
		})
	}
	return lines, nil
}

func (s *GormStore) SaveCart(lines []models.CartLine) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&cartLineRecord{}).Error; err != nil {
			return err
		}
		for i, line := range lines {
			rec := cartLineRecord{
				Position:  i,
				ProductID: line.ProductID,
				Name:      line.Name,
				Price:     line.Price.String(),
				Image:     line.Image,
				Available: line.Available,
				Quantity:  line.Quantity,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) BrowsingSessionID() (uuid.UUID, error) {
	var rec browsingSession
	err := s.DB.First(&rec).Error
	if err == nil {
		return uuid.Parse(rec.SessionID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}
	id := uuid.New()
	rec = browsingSession{SessionID: id.String()}
	if err := s.DB.Create(&rec).Error; err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
