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
	"github.com/tarkandemir/hygieia-admin-sub001/core/utility"
)

// NotificationHandler xử lý các request liên quan đến thông báo.
// Mọi thao tác đọc / đánh dấu đọc / xóa đều giới hạn trong thông báo của
// chính người dùng đang đăng nhập.
type NotificationHandler struct {
	*BaseHandler[models.Notification, dto.NotificationCreateInput, dto.NotificationUpdateInput]
	notificationService *services.NotificationService
}

// NewNotificationHandler tạo một instance mới của NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := services.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}

	handler := &NotificationHandler{
		BaseHandler:         NewBaseHandler[models.Notification, dto.NotificationCreateInput, dto.NotificationUpdateInput](notificationService),
		notificationService: notificationService,
	}
	return handler, nil
}

// InsertOne tạo thông báo cho một người dùng
func (h *NotificationHandler) InsertOne(c fiber.Ctx) error {
	var input dto.NotificationCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	notification, err := h.notificationService.CreateNotification(context.Background(), &input)
	h.HandleResponse(c, notification, err)
	return nil
}

// HandleListOwn trả về thông báo của người dùng đang đăng nhập
func (h *NotificationHandler) HandleListOwn(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	onlyUnread := c.Query("unread") == "true"
	limit := utility.P2Int64(c.Query("limit", "50"))

	notifications, err := h.notificationService.ListByUser(context.Background(), userID, onlyUnread, limit)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	unreadCount, err := h.notificationService.CountUnread(context.Background(), userID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	h.HandleResponse(c, fiber.Map{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	}, nil)
	return nil
}

// HandleMarkRead đánh dấu một thông báo của người dùng là đã đọc
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	notification, err := h.notificationService.MarkRead(context.Background(), objID, userID)
	h.HandleResponse(c, notification, err)
	return nil
}

// HandleMarkAllRead đánh dấu toàn bộ thông báo của người dùng là đã đọc
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	count, err := h.notificationService.MarkAllRead(context.Background(), userID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	h.HandleResponse(c, fiber.Map{"marked": count}, nil)
	return nil
}

// DeleteById xóa một thông báo của chính người dùng
func (h *NotificationHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.notificationService.DeleteOwned(context.Background(), objID, userID)
	h.HandleResponse(c, nil, err)
	return nil
}
