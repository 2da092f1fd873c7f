// Package handler chứa các handler xử lý request HTTP cho phần xác thực và quản lý người dùng
package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/api/services"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/logger"
)

// UserHandler xử lý các request liên quan đến xác thực và quản lý người dùng
type UserHandler struct {
	*BaseHandler[models.User, dto.UserCreateInput, dto.UserUpdateInput]
	userService *services.UserService
}

// NewUserHandler tạo một instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := services.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	handler := &UserHandler{
		BaseHandler: NewBaseHandler[models.User, dto.UserCreateInput, dto.UserUpdateInput](userService),
		userService: userService,
	}
	return handler, nil
}

// currentUserID lấy ObjectID của người dùng đã xác thực từ context
// (được AuthMiddleware inject vào Locals sau khi verify token)
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}

	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID người dùng không hợp lệ", common.StatusBadRequest, err)
	}
	return objID, nil
}

// sanitizeUser loại bỏ thông tin nhạy cảm trước khi trả về
func sanitizeUser(user *models.User) {
	user.Password = ""
	user.Token = ""
	user.Tokens = nil
}

// HandleLogin xử lý đăng nhập bằng email + mật khẩu.
// Trả về user kèm JWT token, đồng thời set cookie http-only cho client web.
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input dto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.Login(context.Background(), &input)
	if err != nil {
		logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAuth("login", c, map[string]interface{}{"email": user.Email})

	token := user.Token
	sanitizeUser(user)

	// Cookie http-only cho client web, thời hạn trùng với JWT
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   7 * 24 * 60 * 60,
	})

	h.HandleResponse(c, fiber.Map{
		"user":  user,
		"token": token,
	}, nil)
	return nil
}

// HandleLogout xử lý đăng xuất: xóa token của thiết bị hiện tại và clear cookie
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input dto.UserLogoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if err := h.userService.Logout(context.Background(), userID, input.Hwid); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAuth("logout", c, nil)

	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    "",
		HTTPOnly: true,
		MaxAge:   -1,
	})

	h.HandleResponse(c, nil, nil)
	return nil
}

// HandleMe trả về thông tin người dùng hiện tại (từ token đã xác thực)
func (h *UserHandler) HandleMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.FindOneById(context.Background(), userID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	sanitizeUser(&user)
	h.HandleResponse(c, user, nil)
	return nil
}

// InsertOne tạo người dùng mới.
// Che CRUD chuẩn của BaseHandler vì cần kiểm tra trùng email và hash mật khẩu.
func (h *UserHandler) InsertOne(c fiber.Ctx) error {
	var input dto.UserCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.CreateUser(context.Background(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	sanitizeUser(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// UpdateById cập nhật người dùng theo id.
// Che CRUD chuẩn vì mật khẩu mới phải được hash và email mới phải kiểm tra trùng.
func (h *UserHandler) UpdateById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	var input dto.UserUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.UpdateUser(context.Background(), objID, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	sanitizeUser(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// DeleteById xóa người dùng theo id, chặn tự xóa chính mình
func (h *UserHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	selfID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.userService.DeleteUser(context.Background(), objID, selfID)
	h.HandleResponse(c, nil, err)
	return nil
}
