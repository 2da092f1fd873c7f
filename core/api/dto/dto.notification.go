package dto

// NotificationCreateInput đại diện cho dữ liệu đầu vào khi tạo thông báo
type NotificationCreateInput struct {
	UserID    string                 `json:"userId" validate:"required" transform:"str_objectid"` // ID người nhận
	Type      string                 `json:"type,omitempty"`                                      // Loại thông báo (order, stock, system...)
	Priority  string                 `json:"priority,omitempty" validate:"omitempty,oneof=low normal high"`
	Title     string                 `json:"title" validate:"required"`   // Tiêu đề
	Message   string                 `json:"message" validate:"required"` // Nội dung
	Data      map[string]interface{} `json:"data,omitempty"`              // Payload kèm theo
	ActionURL string                 `json:"actionUrl,omitempty"`         // Link điều hướng khi click
	ExpiresAt int64                  `json:"expiresAt,omitempty"`         // Hạn tự xóa (Unix millisecond, TTL index)
}

// NotificationUpdateInput đại diện cho dữ liệu đầu vào khi cập nhật thông báo
type NotificationUpdateInput struct {
	IsRead *bool `json:"isRead,omitempty"` // Đánh dấu đã đọc
}
