package utility

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
)

func TestHashPassword_ComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret@123", hash, "hash không được chứa mật khẩu gốc")

	assert.True(t, ComparePassword(hash, "Secret@123"))
	assert.False(t, ComparePassword(hash, "secret@123"), "mật khẩu sai không được khớp")
	assert.False(t, ComparePassword(hash, ""))
}

func TestCreateToken_VerifyToken(t *testing.T) {
	secret := "test-secret"
	token, err := CreateToken(secret, "507f1f77bcf86cd799439011", "admin", "admin@example.com", 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims["userId"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "admin@example.com", claims["email"])
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", "id", "employee", "u@example.com", 7)
	require.NoError(t, err)

	_, err = VerifyToken("secret-b", token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid), "sai secret phải trả về ErrTokenInvalid")
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken("secret", "not-a-jwt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestCreateToken_DefaultExpireDays(t *testing.T) {
	// expireDays <= 0 dùng mặc định 7 ngày, token vẫn hợp lệ
	token, err := CreateToken("secret", "id", "manager", "m@example.com", 0)
	require.NoError(t, err)

	_, err = VerifyToken("secret", token)
	assert.NoError(t, err)
}
