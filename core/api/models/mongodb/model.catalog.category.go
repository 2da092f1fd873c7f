package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category định nghĩa danh mục sản phẩm.
// Liên kết Category ↔ Product là theo tên (Product.Category lưu bản sao
// Category.Name), không phải theo ID. Việc xóa danh mục sẽ bị chặn khi còn
// sản phẩm tham chiếu theo tên (kiểm tra tại thời điểm xóa).
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string             `json:"icon,omitempty" bson:"icon,omitempty"`   // Tên icon hiển thị trên UI
	Color       string             `json:"color,omitempty" bson:"color,omitempty"` // Mã màu hex
	Order       int                `json:"order" bson:"order"`                     // Thứ tự hiển thị
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
