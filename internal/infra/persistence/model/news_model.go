package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsPostModel mirrors the 'news_posts' table.
type NewsPostModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text"`
	CoverURL    string    `gorm:"type:text"`
	Published   bool      `gorm:"not null;default:false;index"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsPostModel) TableName() string {
	return "news_posts"
}
