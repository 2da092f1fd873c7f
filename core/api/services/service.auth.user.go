package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
	"github.com/tarkandemir/hygieia-admin-sub001/core/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Login xác thực đăng nhập bằng email + mật khẩu.
// Hai trường hợp lỗi được phân biệt rõ: sai thông tin đăng nhập (email không
// tồn tại hoặc mật khẩu sai) và tài khoản bị vô hiệu hóa. Đăng nhập thành công
// sẽ sinh JWT, lưu token mới nhất + token theo thiết bị (hwid) và cập nhật
// thời điểm đăng nhập cuối.
func (s *UserService) Login(ctx context.Context, input *dto.UserLoginInput) (*models.User, error) {
	// Tìm user theo email
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	// So sánh mật khẩu
	if !utility.ComparePassword(user.Password, input.Password) {
		return nil, common.ErrInvalidCredentials
	}

	// Tài khoản bị vô hiệu hóa: báo lỗi riêng, không gộp vào sai thông tin đăng nhập
	if !user.IsActive {
		return nil, common.ErrAccountInactive
	}

	// Sinh JWT
	cfg := global.MongoDB_ServerConfig
	tokenString, err := utility.CreateToken(cfg.JwtSecret, user.ID.Hex(), user.Role, user.Email, cfg.JwtExpireDays)
	if err != nil {
		logrus.WithError(err).Error("Login: Lỗi tạo JWT token")
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	// Cập nhật token theo thiết bị: thay token cũ của hwid nếu có
	hwid := input.Hwid
	if hwid == "" {
		hwid = "default"
	}
	newTokens := make([]models.Token, 0, len(user.Tokens)+1)
	for _, t := range user.Tokens {
		if t.Hwid != hwid {
			newTokens = append(newTokens, t)
		}
	}
	newTokens = append(newTokens, models.Token{Hwid: hwid, JwtToken: tokenString})

	updated, err := s.UpdateById(ctx, user.ID, &UpdateData{
		Set: map[string]interface{}{
			"token":       tokenString,
			"tokens":      newTokens,
			"lastLoginAt": time.Now().UnixMilli(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Logout đăng xuất: xóa token của thiết bị (hwid) và token hiện tại
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, hwid string) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if hwid == "" {
		hwid = "default"
	}
	newTokens := make([]models.Token, 0, len(user.Tokens))
	for _, t := range user.Tokens {
		if t.Hwid != hwid {
			newTokens = append(newTokens, t)
		}
	}

	_, err = s.UpdateById(ctx, userID, &UpdateData{
		Set:   map[string]interface{}{"tokens": newTokens},
		Unset: map[string]interface{}{"token": ""},
	})
	return err
}

// CreateUser tạo người dùng mới: kiểm tra trùng email (không phân biệt hoa
// thường) trước khi insert, hash mật khẩu bằng bcrypt.
func (s *UserService) CreateUser(ctx context.Context, input *dto.UserCreateInput) (*models.User, error) {
	// Kiểm tra trùng email bằng regex không phân biệt hoa thường
	exists, err := s.DocumentExists(ctx, bson.M{
		"email": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(input.Email) + "$", Options: "i"},
	})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Email đã được sử dụng",
			common.StatusConflict,
			nil,
		)
	}

	// Hash mật khẩu
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    hashed,
		Role:        input.Role,
		Permissions: input.Permissions,
		IsActive:    isActive,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser cập nhật người dùng theo các field được gửi lên.
// Mật khẩu mới (nếu có) được hash lại; các field không gửi giữ nguyên —
// gửi riêng isActive chỉ thay đổi trạng thái, không đụng các field khác.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, input *dto.UserUpdateInput) (*models.User, error) {
	set := map[string]interface{}{}

	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Email != nil {
		// Kiểm tra email mới không trùng với user khác
		exists, err := s.DocumentExists(ctx, bson.M{
			"_id":   bson.M{"$ne": id},
			"email": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(*input.Email) + "$", Options: "i"},
		})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewError(common.ErrCodeBusinessOperation, "Email đã được sử dụng", common.StatusConflict, nil)
		}
		set["email"] = *input.Email
	}
	if input.Password != nil {
		hashed, err := utility.HashPassword(*input.Password)
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
		}
		set["password"] = hashed
	}
	if input.Role != nil {
		set["role"] = *input.Role
	}
	if input.Permissions != nil {
		set["permissions"] = *input.Permissions
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	if len(set) == 0 {
		user, err := s.FindOneById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	updated, err := s.UpdateById(ctx, id, &UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser xóa người dùng. Không cho phép tự xóa chính mình.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID, currentUserID primitive.ObjectID) error {
	if id == currentUserID {
		return common.ErrSelfDelete
	}
	return s.DeleteById(ctx, id)
}
