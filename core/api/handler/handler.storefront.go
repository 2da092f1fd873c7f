package handler

import (
	"context"
	"fmt"
	"regexp"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/api/services"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
)

// StorefrontHandler xử lý các request công khai của storefront.
// Không yêu cầu xác thực; chỉ nhìn thấy sản phẩm / danh mục active,
// đơn đặt hàng dùng giá bán lẻ với số đơn prefix SF.
type StorefrontHandler struct {
	productService  *services.ProductService
	categoryService *services.CategoryService
	orderService    *services.OrderService
}

// NewStorefrontHandler tạo một instance mới của StorefrontHandler
func NewStorefrontHandler() (*StorefrontHandler, error) {
	productService, err := services.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	categoryService, err := services.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	orderService, err := services.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	return &StorefrontHandler{
		productService:  productService,
		categoryService: categoryService,
		orderService:    orderService,
	}, nil
}

// HandleListCategories trả về các danh mục đang active, theo thứ tự hiển thị
func (h *StorefrontHandler) HandleListCategories(c fiber.Ctx) error {
	opts := options.Find().SetSort(bson.M{"order": 1})
	categories, err := h.categoryService.Find(context.Background(), bson.M{"isActive": true}, opts)
	WriteResponse(c, categories, err)
	return nil
}

// HandleListProducts trả về sản phẩm active, lọc theo tên / danh mục
func (h *StorefrontHandler) HandleListProducts(c fiber.Ctx) error {
	filter := bson.M{"status": models.ProductStatusActive}

	if search := c.Query("search"); search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.M{"name": 1})
	products, err := h.productService.Find(context.Background(), filter, opts)
	WriteResponse(c, products, err)
	return nil
}

// HandleGetProduct trả về chi tiết một sản phẩm active
func (h *StorefrontHandler) HandleGetProduct(c fiber.Ctx) error {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		WriteResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	product, err := h.productService.FindOne(context.Background(), bson.M{
		"_id":    objID,
		"status": models.ProductStatusActive,
	}, nil)
	WriteResponse(c, product, err)
	return nil
}

// HandleCreateOrder tạo đơn hàng từ storefront, không cần đăng nhập.
// Giá dòng hàng là giá bán lẻ tại thời điểm đặt, số đơn mang prefix SF.
func (h *StorefrontHandler) HandleCreateOrder(c fiber.Ctx) error {
	var input dto.StorefrontOrderInput
	if err := parseBody(c, &input); err != nil {
		WriteResponse(c, nil, err)
		return nil
	}

	orderInput := &dto.OrderCreateInput{
		Customer:        input.Customer,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		Items:           input.Items,
		ShippingCost:    input.ShippingCost,
		PaymentMethod:   input.PaymentMethod,
		Notes:           input.Notes,
	}

	order, err := h.orderService.CreateStorefrontOrder(context.Background(), orderInput)
	WriteResponse(c, order, err)
	return nil
}

// HandleGetOrder tra cứu đơn storefront theo số đơn hàng
func (h *StorefrontHandler) HandleGetOrder(c fiber.Ctx) error {
	orderNumber := c.Params("orderNumber")
	if orderNumber == "" {
		WriteResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu số đơn hàng", common.StatusBadRequest, nil))
		return nil
	}

	order, err := h.orderService.FindOne(context.Background(), bson.M{
		"orderNumber": orderNumber,
		"source":      models.OrderSourceStorefront,
	}, nil)
	WriteResponse(c, order, err)
	return nil
}
