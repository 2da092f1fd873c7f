package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò của người dùng trong hệ thống
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Token chứa token xác thực của một thiết bị (phân biệt bằng hwid)
type Token struct {
	Hwid     string `json:"hwid" bson:"hwid"`         // Định danh thiết bị
	JwtToken string `json:"jwtToken" bson:"jwtToken"` // JWT token của thiết bị
}

// User định nghĩa mô hình người dùng quản trị.
// Password và các token phiên không bao giờ được serialize ra JSON —
// các route đọc generic trả thẳng model nên mọi field nhạy cảm phải
// chặn ngay ở tag. Token đăng nhập trả về client qua field riêng của
// response đăng nhập, không qua model.
// Permissions là danh sách capability strings lưu trên từng user; hệ thống
// phân quyền hiện tại dựa trên bảng role tĩnh, danh sách này chỉ được lưu
// và trả về, chưa được đánh giá khi kiểm tra quyền.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email" index:"unique"`
	Password    string             `json:"-" bson:"password"`
	Role        string             `json:"role" bson:"role" index:"single:1"` // admin | manager | employee
	Permissions []string           `json:"permissions" bson:"permissions"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	Token       string             `json:"-" bson:"token"`  // Token xác thực mới nhất, không serialize
	Tokens      []Token            `json:"-" bson:"tokens"` // Token theo từng thiết bị
	LastLoginAt int64              `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
