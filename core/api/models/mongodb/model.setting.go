package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting là document cấu hình duy nhất của hệ thống.
// Data là túi key-value tùy ý, đọc và ghi nguyên khối (không có API sửa từng field).
type Setting struct {
	ID        primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Data      map[string]interface{} `json:"data" bson:"data"`
	CreatedAt int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                  `json:"updatedAt" bson:"updatedAt"`
}
