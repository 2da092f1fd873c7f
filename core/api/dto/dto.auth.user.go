package dto

// UserLoginInput đại diện cho dữ liệu đầu vào khi đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"` // Email đăng nhập (bắt buộc)
	Password string `json:"password" validate:"required"`    // Mật khẩu (bắt buộc)
	Hwid     string `json:"hwid,omitempty"`                  // Mã thiết bị, dùng để lưu token theo thiết bị
}

// UserCreateInput đại diện cho dữ liệu đầu vào khi tạo người dùng
type UserCreateInput struct {
	Name        string   `json:"name" validate:"required"`                                 // Tên hiển thị (bắt buộc)
	Email       string   `json:"email" validate:"required,email"`                          // Email đăng nhập, duy nhất (bắt buộc)
	Password    string   `json:"password" validate:"required,strong_password"`             // Mật khẩu (bắt buộc, tối thiểu 8 ký tự)
	Role        string   `json:"role" validate:"required,oneof=admin manager employee"`    // Vai trò: admin | manager | employee
	Permissions []string `json:"permissions,omitempty"`                                    // Danh sách permission tùy chỉnh (lưu kèm, chưa dùng để phân quyền)
	IsActive    *bool    `json:"isActive,omitempty"`                                       // Trạng thái hoạt động (mặc định true)
}

// UserUpdateInput đại diện cho dữ liệu đầu vào khi cập nhật người dùng.
// Các field đều optional, chỉ update field nào được gửi lên.
type UserUpdateInput struct {
	Name        *string   `json:"name,omitempty"`                                          // Tên hiển thị
	Email       *string   `json:"email,omitempty" validate:"omitempty,email"`              // Email đăng nhập
	Password    *string   `json:"password,omitempty" validate:"omitempty,strong_password"` // Mật khẩu mới
	Role        *string   `json:"role,omitempty" validate:"omitempty,oneof=admin manager employee"`
	Permissions *[]string `json:"permissions,omitempty"` // Danh sách permission tùy chỉnh
	IsActive    *bool     `json:"isActive,omitempty"`    // Trạng thái hoạt động
}

// UserLogoutInput đại diện cho dữ liệu đầu vào khi đăng xuất
type UserLogoutInput struct {
	Hwid string `json:"hwid,omitempty"` // Mã thiết bị cần xóa token
}
