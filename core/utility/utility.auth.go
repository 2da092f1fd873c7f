package utility

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
)

// CreateToken tạo JWT token cho người dùng
// Token chứa userId, role, email và thời hạn (exp)
func CreateToken(secret string, userID string, role string, email string, expireDays int) (string, error) {
	if expireDays <= 0 {
		expireDays = 7
	}

	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"email":  email,
		"exp":    time.Now().AddDate(0, 0, expireDays).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, common.MsgTokenInvalid, common.StatusInternalServerError, err)
	}

	return signed, nil
}

// VerifyToken xác thực JWT token và trả về claims
// Trả về ErrTokenExpired nếu token hết hạn, ErrTokenInvalid nếu token không hợp lệ
func VerifyToken(secret string, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			if validationErr.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, common.ErrTokenExpired
			}
		}
		return nil, common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword so sánh mật khẩu với hash đã lưu
// Trả về true nếu mật khẩu khớp
func ComparePassword(hashedPassword string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
