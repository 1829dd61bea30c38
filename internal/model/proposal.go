package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proposal is one generated document owned by a user. Created exactly once at
// the end of a successful generation run and immutable thereafter.
type Proposal struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"type:text;not null"` // verbatim user description, untruncated
	Content   string    `json:"content" gorm:"type:longtext;not null"`
	Tone      string    `json:"tone" gorm:"size:32"` // raw requested value, even if unrecognized
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Proposal) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
