package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
)

// Tiền tố số đơn hàng theo nguồn tạo đơn
const (
	OrderNumberPrefixAdmin      = "SP" // Đơn tạo từ trang quản trị
	OrderNumberPrefixStorefront = "SF" // Đơn tạo từ storefront công khai
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*BaseServiceMongoImpl[models.Order]
	productService *ProductService
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	productService, err := NewProductService()
	if err != nil {
		return nil, err
	}

	return &OrderService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Order](orderCollection),
		productService:       productService,
	}, nil
}

// generateOrderNumber sinh số đơn hàng dạng <prefix><YY><MM><DD><seq 4 chữ số>.
// Sequence được tính bằng cách tìm số đơn lớn nhất (theo thứ tự từ điển) có
// prefix của ngày hôm nay rồi cộng 1. Đây là chuỗi đọc-tính-ghi không atomic:
// hai request tạo đơn đồng thời có thể cùng đọc ra một sequence.
func (s *OrderService) generateOrderNumber(ctx context.Context, prefix string, now time.Time) (string, error) {
	datePrefix := prefix + now.Format("060102")

	opts := options.FindOne().SetSort(bson.M{"orderNumber": -1})
	last, err := s.FindOne(ctx, bson.M{
		"orderNumber": primitive.Regex{Pattern: "^" + datePrefix},
	}, opts)

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nextOrderNumber(datePrefix, ""), nil
		}
		return "", err
	}

	return nextOrderNumber(datePrefix, last.OrderNumber), nil
}

// nextOrderNumber tính số đơn kế tiếp từ số đơn lớn nhất trong ngày.
// lastOrderNumber rỗng (chưa có đơn nào trong ngày) hoặc không parse được
// đều bắt đầu lại từ 0001.
func nextOrderNumber(datePrefix string, lastOrderNumber string) string {
	seq := 1
	if lastOrderNumber != "" {
		tail := strings.TrimPrefix(lastOrderNumber, datePrefix)
		if n, parseErr := strconv.Atoi(tail); parseErr == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", datePrefix, seq)
}

// buildOrderItems xây danh sách dòng hàng từ input: với mỗi dòng, tìm sản phẩm,
// kiểm tra tồn kho, đóng băng thông tin sản phẩm và TRỪ stock ngay lập tức.
// Xử lý tuần tự từng dòng, KHÔNG rollback: nếu dòng thứ N lỗi, stock của các
// dòng 1..N-1 đã bị trừ và giữ nguyên như vậy.
// retailPricing = true dùng giá bán lẻ (storefront), false dùng giá sỉ.
func (s *OrderService) buildOrderItems(ctx context.Context, inputs []dto.OrderItemInput, retailPricing bool) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	var subtotal float64

	for _, in := range inputs {
		productID, err := primitive.ObjectIDFromHex(in.ProductID)
		if err != nil {
			return nil, 0, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID sản phẩm không hợp lệ: %s", in.ProductID),
				common.StatusBadRequest,
				err,
			)
		}

		product, err := s.productService.FindOneById(ctx, productID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, 0, common.NewError(
					common.ErrCodeDatabaseQuery,
					fmt.Sprintf("Không tìm thấy sản phẩm: %s", in.ProductID),
					common.StatusNotFound,
					nil,
				)
			}
			return nil, 0, err
		}

		// Kiểm tra tồn kho rồi ghi lại: hai bước riêng biệt, không atomic
		if product.Stock < in.Quantity {
			return nil, 0, common.NewError(
				common.ErrCodeBusinessStock,
				fmt.Sprintf("Số lượng tồn kho không đủ cho sản phẩm %s: còn %d, cần %d", product.Name, product.Stock, in.Quantity),
				common.StatusBadRequest,
				nil,
			)
		}

		unitPrice := product.WholesalePrice
		if retailPricing {
			unitPrice = product.RetailPrice
		}
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}

		item := models.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			SKU:        product.SKU,
			Category:   product.Category,
			Quantity:   in.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: float64(in.Quantity) * unitPrice,
		}

		if _, err := s.productService.UpdateById(ctx, product.ID, &UpdateData{
			Set: map[string]interface{}{"stock": product.Stock - in.Quantity},
		}); err != nil {
			return nil, 0, err
		}

		items = append(items, item)
		subtotal += item.TotalPrice
	}

	return items, subtotal, nil
}

// restoreStock cộng trả tồn kho cho toàn bộ dòng hàng của đơn.
// Từng sản phẩm được đọc rồi ghi lại tuần tự; sản phẩm đã bị xóa khỏi catalog
// được bỏ qua.
func (s *OrderService) restoreStock(ctx context.Context, items []models.OrderItem) error {
	for _, item := range items {
		product, err := s.productService.FindOneById(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			return err
		}
		if _, err := s.productService.UpdateById(ctx, product.ID, &UpdateData{
			Set: map[string]interface{}{"stock": product.Stock + item.Quantity},
		}); err != nil {
			return err
		}
	}
	return nil
}

// CreateOrder tạo đơn hàng mới từ trang quản trị (giá sỉ, prefix SP)
func (s *OrderService) CreateOrder(ctx context.Context, input *dto.OrderCreateInput, createdBy *primitive.ObjectID) (*models.Order, error) {
	return s.createOrder(ctx, input, createdBy, models.OrderSourceAdmin)
}

// CreateStorefrontOrder tạo đơn hàng từ storefront công khai (giá lẻ, prefix SF, không có người tạo)
func (s *OrderService) CreateStorefrontOrder(ctx context.Context, input *dto.OrderCreateInput) (*models.Order, error) {
	return s.createOrder(ctx, input, nil, models.OrderSourceStorefront)
}

func (s *OrderService) createOrder(ctx context.Context, input *dto.OrderCreateInput, createdBy *primitive.ObjectID, source string) (*models.Order, error) {
	retailPricing := source == models.OrderSourceStorefront

	items, subtotal, err := s.buildOrderItems(ctx, input.Items, retailPricing)
	if err != nil {
		return nil, err
	}

	prefix := OrderNumberPrefixAdmin
	if retailPricing {
		prefix = OrderNumberPrefixStorefront
	}
	now := time.Now()
	orderNumber, err := s.generateOrderNumber(ctx, prefix, now)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		OrderNumber:           orderNumber,
		Customer:              toOrderCustomer(&input.Customer),
		Items:                 items,
		Subtotal:              subtotal,
		TaxAmount:             input.TaxAmount,
		ShippingCost:          input.ShippingCost,
		DiscountAmount:        input.DiscountAmount,
		TotalAmount:           subtotal + input.TaxAmount + input.ShippingCost - input.DiscountAmount,
		PaymentMethod:         input.PaymentMethod,
		Notes:                 input.Notes,
		OrderDate:             now.UnixMilli(),
		EstimatedDeliveryDate: input.EstimatedDeliveryDate,
		Source:                source,
		CreatedBy:             createdBy,
	}
	if input.BillingAddress != nil {
		order.BillingAddress = toOrderAddress(input.BillingAddress)
	}
	if input.ShippingAddress != nil {
		order.ShippingAddress = toOrderAddress(input.ShippingAddress)
	}

	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOrder cập nhật đơn hàng.
// Nếu items được gửi lên: cộng trả stock của toàn bộ items cũ, rồi kiểm tra và
// trừ stock theo items mới y như khi tạo đơn. Lỗi giữa chừng ở danh sách mới
// KHÔNG rollback: stock items cũ đã cộng trả, items mới mới trừ được một phần.
// Chuyển trạng thái chạy side effect: shipped đóng dấu shippedAt, delivered
// đóng dấu actualDeliveryDate (nếu chưa có), cancelled cộng trả stock một lần
// duy nhất (đánh dấu stockRestored).
func (s *OrderService) UpdateOrder(ctx context.Context, id primitive.ObjectID, input *dto.OrderUpdateInput) (*models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}

	if input.Items != nil {
		if err := s.restoreStock(ctx, order.Items); err != nil {
			return nil, err
		}

		retailPricing := order.Source == models.OrderSourceStorefront
		items, subtotal, err := s.buildOrderItems(ctx, *input.Items, retailPricing)
		if err != nil {
			return nil, err
		}

		taxAmount := order.TaxAmount
		if input.TaxAmount != nil {
			taxAmount = *input.TaxAmount
		}
		shippingCost := order.ShippingCost
		if input.ShippingCost != nil {
			shippingCost = *input.ShippingCost
		}
		discountAmount := order.DiscountAmount
		if input.DiscountAmount != nil {
			discountAmount = *input.DiscountAmount
		}

		set["items"] = items
		set["subtotal"] = subtotal
		set["totalAmount"] = subtotal + taxAmount + shippingCost - discountAmount
	} else if input.TaxAmount != nil || input.ShippingCost != nil || input.DiscountAmount != nil {
		// Thay đổi phí/thuế/giảm giá mà không đổi items: tính lại tổng trên subtotal hiện tại
		taxAmount := order.TaxAmount
		if input.TaxAmount != nil {
			taxAmount = *input.TaxAmount
		}
		shippingCost := order.ShippingCost
		if input.ShippingCost != nil {
			shippingCost = *input.ShippingCost
		}
		discountAmount := order.DiscountAmount
		if input.DiscountAmount != nil {
			discountAmount = *input.DiscountAmount
		}
		set["totalAmount"] = order.Subtotal + taxAmount + shippingCost - discountAmount
	}

	if input.TaxAmount != nil {
		set["taxAmount"] = *input.TaxAmount
	}
	if input.ShippingCost != nil {
		set["shippingCost"] = *input.ShippingCost
	}
	if input.DiscountAmount != nil {
		set["discountAmount"] = *input.DiscountAmount
	}
	if input.Customer != nil {
		set["customer"] = toOrderCustomer(input.Customer)
	}
	if input.BillingAddress != nil {
		set["billingAddress"] = toOrderAddress(input.BillingAddress)
	}
	if input.ShippingAddress != nil {
		set["shippingAddress"] = toOrderAddress(input.ShippingAddress)
	}
	if input.PaymentStatus != nil {
		set["paymentStatus"] = *input.PaymentStatus
	}
	if input.PaymentMethod != nil {
		set["paymentMethod"] = *input.PaymentMethod
	}
	if input.TrackingNumber != nil {
		set["trackingNumber"] = *input.TrackingNumber
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}
	if input.EstimatedDeliveryDate != nil {
		set["estimatedDeliveryDate"] = *input.EstimatedDeliveryDate
	}

	if input.Status != nil {
		newStatus := *input.Status
		set["status"] = newStatus

		switch newStatus {
		case models.OrderStatusShipped:
			if order.ShippedAt == 0 {
				set["shippedAt"] = time.Now().UnixMilli()
			}
		case models.OrderStatusDelivered:
			if order.ActualDeliveryDate == 0 {
				set["actualDeliveryDate"] = time.Now().UnixMilli()
			}
		case models.OrderStatusCancelled:
			// Chỉ cộng trả stock một lần, và không cộng trả nếu chính request
			// này vừa thay items (stock items mới đã đúng)
			if !order.StockRestored && input.Items == nil {
				if err := s.restoreStock(ctx, order.Items); err != nil {
					return nil, err
				}
				set["stockRestored"] = true
			}
		}
	}

	if len(set) == 0 {
		return &order, nil
	}

	updated, err := s.UpdateById(ctx, id, &UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOrder xóa đơn hàng. Chỉ cho phép xóa đơn ở trạng thái pending hoặc
// cancelled. Stock được cộng trả trước khi xóa nếu chưa từng được cộng trả.
func (s *OrderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusCancelled {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Chỉ có thể xóa đơn hàng ở trạng thái pending hoặc cancelled, đơn %s đang ở trạng thái %s", order.OrderNumber, order.Status),
			common.StatusBadRequest,
			nil,
		)
	}

	if !order.StockRestored {
		if err := s.restoreStock(ctx, order.Items); err != nil {
			return err
		}
	}

	return s.DeleteById(ctx, id)
}

// ListOrders trả về danh sách đơn hàng theo bộ lọc, kèm thống kê số đơn theo
// trạng thái (trên cùng bộ lọc, bỏ qua điều kiện status) và thông tin phân
// trang. Luôn sắp xếp theo thời gian tạo giảm dần.
func (s *OrderService) ListOrders(ctx context.Context, filter *dto.OrderListFilter, page, limit int64) (*dto.OrderListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := bson.M{}
	if filter.Search != "" {
		searchRegex := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = []bson.M{
			{"orderNumber": searchRegex},
			{"customer.name": searchRegex},
			{"customer.email": searchRegex},
			{"customer.company": searchRegex},
		}
	}
	if filter.PaymentStatus != "" {
		query["paymentStatus"] = bson.M{"$in": strings.Split(filter.PaymentStatus, ",")}
	}
	if filter.DateFrom > 0 || filter.DateTo > 0 {
		dateRange := bson.M{}
		if filter.DateFrom > 0 {
			dateRange["$gte"] = filter.DateFrom
		}
		if filter.DateTo > 0 {
			dateRange["$lte"] = filter.DateTo
		}
		query["orderDate"] = dateRange
	}
	if filter.MinAmount > 0 || filter.MaxAmount > 0 {
		amountRange := bson.M{}
		if filter.MinAmount > 0 {
			amountRange["$gte"] = filter.MinAmount
		}
		if filter.MaxAmount > 0 {
			amountRange["$lte"] = filter.MaxAmount
		}
		query["totalAmount"] = amountRange
	}

	// Thống kê theo trạng thái tính trên bộ lọc CHƯA áp điều kiện status
	stats, err := s.countByStatus(ctx, query)
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		query["status"] = bson.M{"$in": strings.Split(filter.Status, ",")}
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	paginated, err := s.FindWithPagination(ctx, query, page, limit, opts)
	if err != nil {
		return nil, err
	}

	pages := paginated.Total / limit
	if paginated.Total%limit > 0 {
		pages++
	}

	return &dto.OrderListResult{
		Orders: paginated.Items,
		Stats:  *stats,
		Pagination: dto.OrderListPagination{
			Page:  page,
			Limit: limit,
			Total: paginated.Total,
			Pages: pages,
		},
	}, nil
}

// countByStatus đếm số đơn theo từng trạng thái bằng một aggregation $group
func (s *OrderService) countByStatus(ctx context.Context, filter bson.M) (*dto.OrderStats, error) {
	pipeline := []bson.M{
		{"$match": filter},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &dto.OrderStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.OrderStatusPending:
			stats.Pending = row.Count
		case models.OrderStatusConfirmed:
			stats.Confirmed = row.Count
		case models.OrderStatusProcessing:
			stats.Processing = row.Count
		case models.OrderStatusShipped:
			stats.Shipped = row.Count
		case models.OrderStatusDelivered:
			stats.Delivered = row.Count
		case models.OrderStatusCancelled:
			stats.Cancelled = row.Count
		}
	}
	return stats, nil
}

func toOrderCustomer(in *dto.OrderCustomerInput) models.OrderCustomer {
	return models.OrderCustomer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
	}
}

func toOrderAddress(in *dto.OrderAddressInput) models.OrderAddress {
	return models.OrderAddress{
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		ZipCode: in.ZipCode,
		Country: in.Country,
	}
}
