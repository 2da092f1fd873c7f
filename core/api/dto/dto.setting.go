package dto

// SettingUpdateInput đại diện cho dữ liệu cấu hình hệ thống.
// Document settings là singleton: toàn bộ Data được thay thế mỗi lần lưu.
type SettingUpdateInput struct {
	Data map[string]interface{} `json:"data" validate:"required"`
}
