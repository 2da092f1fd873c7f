package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification định nghĩa thông báo gửi tới từng người dùng.
// ExpiresAt dùng TTL index: MongoDB tự xóa document khi quá hạn.
// TTL index chỉ hoạt động trên kiểu date nên ExpiresAt là time.Time,
// khác với các timestamp int64 UnixMilli còn lại.
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	Type      string             `json:"type" bson:"type"`         // info | warning | error | success
	Priority  string             `json:"priority" bson:"priority"` // low | normal | high
	Title     string             `json:"title" bson:"title"`
	Message   string             `json:"message" bson:"message"`
	Data      map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"` // Payload tùy ý đính kèm
	ActionURL string             `json:"actionUrl,omitempty" bson:"actionUrl,omitempty"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	ReadAt    int64              `json:"readAt,omitempty" bson:"readAt,omitempty"`
	ExpiresAt *time.Time         `json:"expiresAt,omitempty" bson:"expiresAt,omitempty" index:"ttl:0"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
