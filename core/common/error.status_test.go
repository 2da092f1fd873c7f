package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError_Fields(t *testing.T) {
	err := NewError(ErrCodeBusinessStock, "Số lượng tồn kho không đủ cho sản phẩm X", StatusBadRequest, nil)

	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatal("NewError phải trả về *Error")
	}
	if customErr.Code.Code != "BIZ_003" {
		t.Errorf("mã lỗi không đúng: %s", customErr.Code.Code)
	}
	if customErr.StatusCode != StatusBadRequest {
		t.Errorf("status code không đúng: %d", customErr.StatusCode)
	}
	if customErr.Error() != "Số lượng tồn kho không đủ cho sản phẩm X" {
		t.Errorf("message không đúng: %s", customErr.Error())
	}
}

func TestErrorIs_Sentinels(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("ErrNotFound phải khớp với chính nó qua errors.Is")
	}
	if errors.Is(ErrNotFound, ErrInvalidCredentials) {
		t.Error("ErrNotFound không được khớp với ErrInvalidCredentials")
	}
	// Hai lỗi đăng nhập phân biệt được với nhau: tài khoản bị khóa khác sai mật khẩu
	if errors.Is(ErrAccountInactive, ErrInvalidCredentials) {
		t.Error("ErrAccountInactive và ErrInvalidCredentials phải là hai lỗi khác nhau")
	}
}

func TestConvertMongoError_PreservesNotFound(t *testing.T) {
	// ErrNotFound phải được giữ nguyên để caller xử lý bằng errors.Is
	converted := ConvertMongoError(ErrNotFound)
	if !errors.Is(converted, ErrNotFound) {
		t.Error("ConvertMongoError không được convert ErrNotFound")
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if ConvertMongoError(nil) != nil {
		t.Error("ConvertMongoError(nil) phải trả về nil")
	}
}

func TestConvertMongoError_Generic(t *testing.T) {
	converted := ConvertMongoError(errors.New("socket closed"))

	var customErr *Error
	if !errors.As(converted, &customErr) {
		t.Fatal("lỗi generic phải được wrap thành *Error")
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi generic phải có status 500, nhận được %d", customErr.StatusCode)
	}
}

func TestConvertMongoError_CommandError(t *testing.T) {
	converted := ConvertMongoError(mongo.CommandError{Code: 250, Message: "auth failed"})
	if !errors.Is(converted, ErrMongoAuth) {
		t.Error("CommandError mã 2xx phải map sang ErrMongoAuth")
	}
}
