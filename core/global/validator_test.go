package global

import "testing"

type passwordInput struct {
	Password string `validate:"required,strong_password"`
}

func TestStrongPasswordValidator(t *testing.T) {
	InitValidator()

	valid := []string{
		"Abcdef12",    // hoa + thường + số
		"abcdef1!",    // thường + số + ký tự đặc biệt
		"ABCDEF1!",    // hoa + số + ký tự đặc biệt
		"Str0ng@Pass", // đủ cả 4 điều kiện
	}
	for _, pw := range valid {
		if err := Validate.Struct(passwordInput{Password: pw}); err != nil {
			t.Errorf("mật khẩu %q phải hợp lệ: %v", pw, err)
		}
	}

	invalid := []string{
		"Ab1!",     // quá ngắn
		"abcdefgh", // chỉ có chữ thường
		"12345678", // chỉ có số
		"abcdefg1", // chỉ 2 trong 4 điều kiện
		"",         // rỗng
	}
	for _, pw := range invalid {
		if err := Validate.Struct(passwordInput{Password: pw}); err == nil {
			t.Errorf("mật khẩu %q phải bị từ chối", pw)
		}
	}
}

type emailInput struct {
	Email string `validate:"required,email"`
}

func TestEmailValidation(t *testing.T) {
	InitValidator()

	if err := Validate.Struct(emailInput{Email: "user@example.com"}); err != nil {
		t.Errorf("email hợp lệ bị từ chối: %v", err)
	}
	if err := Validate.Struct(emailInput{Email: "not-an-email"}); err == nil {
		t.Error("email không hợp lệ phải bị từ chối")
	}
}
