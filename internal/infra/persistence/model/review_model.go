package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The composite unique index enforces
// one review per user per book at the storage level.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_book_user,priority:1"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_book_user,priority:2"`
	Rating     int       `gorm:"type:smallint;not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	ReviewText string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All lists every model managed by the service, in migration order.
func All() []any {
	return []any{&UserModel{}, &BookModel{}, &ReviewModel{}}
}
