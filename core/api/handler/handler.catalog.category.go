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
)

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm
type CategoryHandler struct {
	*BaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput]
	categoryService *services.CategoryService
}

// NewCategoryHandler tạo một instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := services.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	handler := &CategoryHandler{
		BaseHandler:     NewBaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput](categoryService),
		categoryService: categoryService,
	}
	return handler, nil
}

// InsertOne tạo danh mục mới.
// Che CRUD chuẩn vì cần kiểm tra trùng tên không phân biệt hoa thường.
func (h *CategoryHandler) InsertOne(c fiber.Ctx) error {
	var input dto.CategoryCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	category, err := h.categoryService.CreateCategory(context.Background(), &input)
	h.HandleResponse(c, category, err)
	return nil
}

// UpdateById cập nhật danh mục theo id, chỉ update các field được gửi lên
func (h *CategoryHandler) UpdateById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	var input dto.CategoryUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	category, err := h.categoryService.UpdateCategory(context.Background(), objID, &input)
	h.HandleResponse(c, category, err)
	return nil
}

// DeleteById xóa danh mục theo id.
// Bị chặn khi còn sản phẩm thuộc danh mục, lỗi trả về kèm số lượng sản phẩm.
func (h *CategoryHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	err := h.categoryService.DeleteCategory(context.Background(), objID)
	h.HandleResponse(c, nil, err)
	return nil
}
