package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của sản phẩm
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

// ProductDimensions chứa kích thước và khối lượng của sản phẩm
type ProductDimensions struct {
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`   // cm
	Height float64 `json:"height,omitempty" bson:"height,omitempty"` // cm
	Depth  float64 `json:"depth,omitempty" bson:"depth,omitempty"`   // cm
	Weight float64 `json:"weight,omitempty" bson:"weight,omitempty"` // kg
}

// ProductSupplier chứa thông tin nhà cung cấp của sản phẩm
type ProductSupplier struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Code    string `json:"code,omitempty" bson:"code,omitempty"`
	Contact string `json:"contact,omitempty" bson:"contact,omitempty"`
}

// Product định nghĩa sản phẩm.
// Stock là số lượng tồn kho chính thức, chỉ được thay đổi qua các thao tác
// của đơn hàng (trừ khi tạo/sửa đơn, cộng lại khi hủy/xóa đơn). Việc kiểm tra
// stock >= quantity và việc ghi stock là hai bước riêng biệt, không atomic.
// Category lưu bản sao tên danh mục, không phải ID tham chiếu.
type Product struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"text"`
	SKU            string             `json:"sku" bson:"sku" index:"unique"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Category       string             `json:"category" bson:"category" index:"single:1"` // Tên danh mục (denormalized)
	WholesalePrice float64            `json:"wholesalePrice" bson:"wholesalePrice"`      // Giá bán sỉ (đơn nội bộ)
	RetailPrice    float64            `json:"retailPrice" bson:"retailPrice"`            // Giá bán lẻ (storefront)
	Stock          int64              `json:"stock" bson:"stock"`                        // Số lượng tồn kho
	MinStock       int64              `json:"minStock" bson:"minStock"`                  // Ngưỡng cảnh báo nhập thêm
	Unit           string             `json:"unit,omitempty" bson:"unit,omitempty" default:"adet"` // Đơn vị tính mặc định
	Dimensions     ProductDimensions  `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	Supplier       ProductSupplier    `json:"supplier,omitempty" bson:"supplier,omitempty"`
	Tags           []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Status         string             `json:"status" bson:"status" index:"single:1" default:"active"` // active | inactive | draft
	Images         []string           `json:"images,omitempty" bson:"images,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
