package models

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestUserSerialization_HidesCredentials đảm bảo mật khẩu và token phiên
// không bao giờ xuất hiện trong JSON — các route đọc generic trả thẳng model
// nên chỉ cần lọt một field là lộ phiên đăng nhập của người dùng.
func TestUserSerialization_HidesCredentials(t *testing.T) {
	user := User{
		Name:     "Nhân viên A",
		Email:    "a@example.com",
		Password: "$2a$10$hashed-password",
		Role:     RoleEmployee,
		IsActive: true,
		Token:    "eyJhbGciOiJIUzI1NiJ9.phien-dang-nhap",
		Tokens: []Token{
			{Hwid: "thiet-bi-1", JwtToken: "eyJhbGciOiJIUzI1NiJ9.phien-thiet-bi"},
		},
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal user thất bại: %v", err)
	}
	out := string(data)

	for _, secret := range []string{
		"$2a$10$hashed-password",
		"phien-dang-nhap",
		"phien-thiet-bi",
		`"token"`,
		`"tokens"`,
		`"password"`,
	} {
		if strings.Contains(out, secret) {
			t.Errorf("JSON của user không được chứa %q, nhận được: %s", secret, out)
		}
	}

	// Các field công khai vẫn phải serialize bình thường
	for _, field := range []string{`"email"`, `"role"`, `"isActive"`} {
		if !strings.Contains(out, field) {
			t.Errorf("JSON của user phải chứa %s, nhận được: %s", field, out)
		}
	}
}
