package dto

// CategoryCreateInput đại diện cho dữ liệu đầu vào khi tạo danh mục sản phẩm
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required"` // Tên danh mục, duy nhất không phân biệt hoa thường (bắt buộc)
	Description string `json:"description,omitempty"`    // Mô tả
	Icon        string `json:"icon,omitempty"`           // Icon hiển thị
	Color       string `json:"color,omitempty"`          // Màu hiển thị
	Order       int    `json:"order,omitempty"`          // Thứ tự sắp xếp
	IsActive    *bool  `json:"isActive,omitempty"`       // Trạng thái hoạt động (mặc định true)
}

// CategoryUpdateInput đại diện cho dữ liệu đầu vào khi cập nhật danh mục.
// Các field đều optional, chỉ update field nào được gửi lên.
type CategoryUpdateInput struct {
	Name        *string `json:"name,omitempty"`        // Tên danh mục
	Description *string `json:"description,omitempty"` // Mô tả
	Icon        *string `json:"icon,omitempty"`        // Icon hiển thị
	Color       *string `json:"color,omitempty"`       // Màu hiển thị
	Order       *int    `json:"order,omitempty"`       // Thứ tự sắp xếp
	IsActive    *bool   `json:"isActive,omitempty"`    // Trạng thái hoạt động
}
