package dbmysql

import (
	"time"

	"github.com/vanshaj8/Promptly/internal/common"
)

// Brand is the tenant root. Brand administration lives outside this service;
// the table is owned here so accounts and comments have something to point at.
type Brand struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Category  string    `gorm:"column:category;size:100" json:"category"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}

type InstagramAccount struct {
	ID                         uint       `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	BrandID                    uint       `gorm:"column:brand_id;not null;index" json:"brand_id"`
	InstagramBusinessAccountID string     `gorm:"column:instagram_business_account_id;size:64;not null;uniqueIndex" json:"instagram_business_account_id"`
	PageID                     string     `gorm:"column:page_id;size:64;not null" json:"page_id"`
	AccessToken                string     `gorm:"column:access_token;type:text;not null" json:"-"` // page token, stored as issued
	Username                   string     `gorm:"column:username;size:255" json:"username"`
	ProfilePictureURL          string     `gorm:"column:profile_picture_url;size:1024" json:"profile_picture_url"`
	IsConnected                bool       `gorm:"column:is_connected;not null;index" json:"is_connected"`
	LastSyncAt                 *time.Time `gorm:"column:last_sync_at" json:"last_sync_at,omitempty"`
	CreatedAt                  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (InstagramAccount) TableName() string {
	return "instagram_accounts"
}

// Comment mirrors one Instagram comment. CommentID is the external id and the dedup key.
type Comment struct {
	ID                 uint                 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	BrandID            uint                 `gorm:"column:brand_id;not null;index:idx_comments_brand_status,priority:1" json:"brand_id"`
	InstagramAccountID uint                 `gorm:"column:instagram_account_id;not null;index" json:"instagram_account_id"`
	CommentID          string               `gorm:"column:comment_id;size:64;not null;uniqueIndex" json:"comment_id"`
	MediaID            string               `gorm:"column:media_id;size:64;index" json:"media_id"`
	ParentID           *string              `gorm:"column:parent_id;size:64" json:"parent_id,omitempty"`
	Text               string               `gorm:"column:text;type:text" json:"text"`
	Username           string               `gorm:"column:username;size:255" json:"username"`
	UserID             string               `gorm:"column:user_id;size:64" json:"user_id"`
	Timestamp          time.Time            `gorm:"column:timestamp;not null;index" json:"timestamp"`
	LikeCount          int                  `gorm:"column:like_count;not null" json:"like_count"`
	Status             common.CommentStatus `gorm:"column:status;size:16;not null;index:idx_comments_brand_status,priority:2" json:"status"`
	CreatedAt          time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Reply is written once per successful dispatch and never changed.
type Reply struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	CommentID uint      `gorm:"column:comment_id;not null;index" json:"comment_id"`
	BrandID   uint      `gorm:"column:brand_id;not null;index" json:"brand_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	ReplyID   string    `gorm:"column:reply_id;size:64;not null;uniqueIndex" json:"reply_id"`
	Text      string    `gorm:"column:text;type:text;not null" json:"text"`
	SentAt    time.Time `gorm:"column:sent_at;not null" json:"sent_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Reply) TableName() string {
	return "replies"
}
