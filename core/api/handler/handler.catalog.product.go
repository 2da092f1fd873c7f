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

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	*BaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput]
	productService *services.ProductService
}

// NewProductHandler tạo một instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := services.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	handler := &ProductHandler{
		BaseHandler:    NewBaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput](productService),
		productService: productService,
	}
	return handler, nil
}

// InsertOne tạo sản phẩm mới.
// Che CRUD chuẩn vì cần kiểm tra trùng SKU không phân biệt hoa thường.
func (h *ProductHandler) InsertOne(c fiber.Ctx) error {
	var input dto.ProductCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	product, err := h.productService.CreateProduct(context.Background(), &input)
	h.HandleResponse(c, product, err)
	return nil
}

// UpdateById cập nhật sản phẩm theo id, chỉ update các field được gửi lên
func (h *ProductHandler) UpdateById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	var input dto.ProductUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	product, err := h.productService.UpdateProduct(context.Background(), objID, &input)
	h.HandleResponse(c, product, err)
	return nil
}

// HandleImport import sản phẩm hàng loạt từ file CSV upload dạng multipart.
// Từng dòng được xử lý độc lập, kết quả trả về gồm số dòng import thành công,
// tổng số dòng và danh sách lỗi theo dòng.
func (h *ProductHandler) HandleImport(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file CSV trong request", common.StatusBadRequest, err))
		return nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Không thể đọc file upload", common.StatusBadRequest, err))
		return nil
	}
	defer file.Close()

	result, err := h.productService.ImportCSV(context.Background(), file)
	h.HandleResponse(c, result, err)
	return nil
}
