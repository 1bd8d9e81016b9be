package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. Rating caches the mean of the book's review ratings.
type BookModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null;index"`
	Author    string    `gorm:"type:varchar(255);not null;index"`
	Genre     string    `gorm:"type:varchar(100);not null;index"`
	Summary   string    `gorm:"type:text;not null"`
	AddedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    float64   `gorm:"type:double precision;not null;default:3"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Adder   *UserModel    `gorm:"foreignKey:AddedBy;constraint:OnDelete:RESTRICT"`
	Reviews []ReviewModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
