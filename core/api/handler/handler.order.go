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
	"github.com/tarkandemir/hygieia-admin-sub001/core/utility"
)

// OrderHandler xử lý các request liên quan đến đơn hàng nội bộ
type OrderHandler struct {
	*BaseHandler[models.Order, dto.OrderCreateInput, dto.OrderUpdateInput]
	orderService *services.OrderService
}

// NewOrderHandler tạo một instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := services.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	handler := &OrderHandler{
		BaseHandler:  NewBaseHandler[models.Order, dto.OrderCreateInput, dto.OrderUpdateInput](orderService),
		orderService: orderService,
	}
	return handler, nil
}

// InsertOne tạo đơn hàng mới.
// Che CRUD chuẩn vì tạo đơn kéo theo kiểm tra và trừ tồn kho, sinh số đơn,
// đóng băng thông tin sản phẩm và tính tổng tiền.
func (h *OrderHandler) InsertOne(c fiber.Ctx) error {
	var input dto.OrderCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var createdBy *primitive.ObjectID
	if userID, err := currentUserID(c); err == nil {
		createdBy = &userID
	}

	order, err := h.orderService.CreateOrder(context.Background(), &input, createdBy)
	if err == nil {
		logger.LogCRUD("create", "order", order.OrderNumber, c, nil)
	}
	h.HandleResponse(c, order, err)
	return nil
}

// UpdateById cập nhật đơn hàng theo id.
// Che CRUD chuẩn vì thay items kéo theo hoàn trả / trừ lại tồn kho và tính
// lại tổng tiền; chuyển trạng thái chạy các side effect tương ứng.
func (h *OrderHandler) UpdateById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	var input dto.OrderUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	order, err := h.orderService.UpdateOrder(context.Background(), objID, &input)
	h.HandleResponse(c, order, err)
	return nil
}

// DeleteById xóa đơn hàng theo id.
// Chỉ đơn pending / cancelled mới xóa được, tồn kho được hoàn trả nếu cần.
func (h *OrderHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	err := h.orderService.DeleteOrder(context.Background(), objID)
	if err == nil {
		logger.LogCRUD("delete", "order", id, c, nil)
	}
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleList trả về danh sách đơn hàng với bộ lọc tổng hợp từ query string,
// kèm thống kê số đơn theo trạng thái và thông tin phân trang
func (h *OrderHandler) HandleList(c fiber.Ctx) error {
	filter := &dto.OrderListFilter{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		DateFrom:      utility.P2Int64(c.Query("dateFrom", "0")),
		DateTo:        utility.P2Int64(c.Query("dateTo", "0")),
		MinAmount:     utility.P2Float64(c.Query("minAmount", "0")),
		MaxAmount:     utility.P2Float64(c.Query("maxAmount", "0")),
	}

	page, limit := h.ParsePagination(c)

	result, err := h.orderService.ListOrders(context.Background(), filter, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}
