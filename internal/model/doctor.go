package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Doctor is the sub-profile owned by a doctor-role user.
type Doctor struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID       `json:"userId" gorm:"type:char(36);uniqueIndex;not null"`
	StrNumber       string          `json:"strNumber" gorm:"size:64"`
	Username        string          `json:"username" gorm:"size:255"`
	Specialist      string          `json:"specialist" gorm:"size:255"`
	ConsultationFee decimal.Decimal `json:"consultationFee" gorm:"type:decimal(12,2);default:0"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
