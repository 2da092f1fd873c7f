package dto

import (
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
)

// OrderItemInput là một dòng hàng trong request tạo/cập nhật đơn.
// UnitPrice là optional: nếu không gửi, hệ thống lấy giá sỉ (đơn nội bộ)
// hoặc giá lẻ (đơn storefront) tại thời điểm đặt.
type OrderItemInput struct {
	ProductID string   `json:"productId" validate:"required"`    // ID sản phẩm (hex ObjectID)
	Quantity  int64    `json:"quantity" validate:"required,min=1"` // Số lượng đặt
	UnitPrice *float64 `json:"unitPrice,omitempty" validate:"omitempty,min=0"` // Đơn giá (optional)
}

// OrderCustomerInput là thông tin khách hàng của đơn
type OrderCustomerInput struct {
	Name    string `json:"name" validate:"required"`                   // Tên khách hàng (bắt buộc)
	Email   string `json:"email,omitempty" validate:"omitempty,email"` // Email
	Phone   string `json:"phone,omitempty"`                            // Số điện thoại
	Company string `json:"company,omitempty"`                          // Tên công ty
}

// OrderAddressInput là địa chỉ giao hàng / thanh toán
type OrderAddressInput struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// OrderCreateInput đại diện cho dữ liệu đầu vào khi tạo đơn hàng
type OrderCreateInput struct {
	Customer              OrderCustomerInput `json:"customer" validate:"required"`
	BillingAddress        *OrderAddressInput `json:"billingAddress,omitempty"`
	ShippingAddress       *OrderAddressInput `json:"shippingAddress,omitempty"`
	Items                 []OrderItemInput   `json:"items" validate:"required,min=1,dive"` // Danh sách dòng hàng (bắt buộc, ít nhất 1)
	TaxAmount             float64            `json:"taxAmount,omitempty" validate:"omitempty,min=0"`
	ShippingCost          float64            `json:"shippingCost,omitempty" validate:"omitempty,min=0"`
	DiscountAmount        float64            `json:"discountAmount,omitempty" validate:"omitempty,min=0"`
	PaymentMethod         string             `json:"paymentMethod,omitempty"`
	Notes                 string             `json:"notes,omitempty"`
	EstimatedDeliveryDate int64              `json:"estimatedDeliveryDate,omitempty"` // Unix millisecond
}

// OrderUpdateInput đại diện cho dữ liệu đầu vào khi cập nhật đơn hàng.
// Nếu Items được gửi lên, toàn bộ danh sách dòng hàng bị thay thế: stock của
// items cũ được cộng trả rồi trừ lại theo items mới, tổng tiền được tính lại.
type OrderUpdateInput struct {
	Customer              *OrderCustomerInput `json:"customer,omitempty"`
	BillingAddress        *OrderAddressInput  `json:"billingAddress,omitempty"`
	ShippingAddress       *OrderAddressInput  `json:"shippingAddress,omitempty"`
	Items                 *[]OrderItemInput   `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	TaxAmount             *float64            `json:"taxAmount,omitempty" validate:"omitempty,min=0"`
	ShippingCost          *float64            `json:"shippingCost,omitempty" validate:"omitempty,min=0"`
	DiscountAmount        *float64            `json:"discountAmount,omitempty" validate:"omitempty,min=0"`
	Status                *string             `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	PaymentStatus         *string             `json:"paymentStatus,omitempty" validate:"omitempty,oneof=pending paid failed refunded"`
	PaymentMethod         *string             `json:"paymentMethod,omitempty"`
	TrackingNumber        *string             `json:"trackingNumber,omitempty"`
	Notes                 *string             `json:"notes,omitempty"`
	EstimatedDeliveryDate *int64              `json:"estimatedDeliveryDate,omitempty"`
}

// OrderListFilter là bộ lọc danh sách đơn hàng (đọc từ query string)
type OrderListFilter struct {
	Search        string  // Tìm theo orderNumber / tên / email khách hàng
	Status        string  // Lọc theo trạng thái đơn
	PaymentStatus string  // Lọc theo trạng thái thanh toán
	DateFrom      int64   // Từ ngày (Unix millisecond, theo orderDate)
	DateTo        int64   // Đến ngày
	MinAmount     float64 // Tổng tiền tối thiểu
	MaxAmount     float64 // Tổng tiền tối đa
}

// OrderStats là thống kê số lượng đơn theo trạng thái, trả kèm danh sách đơn
type OrderStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Confirmed  int64 `json:"confirmed"`
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
	Cancelled  int64 `json:"cancelled"`
}

// OrderListPagination là thông tin phân trang trong envelope danh sách đơn
type OrderListPagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// OrderListResult là envelope trả về của danh sách đơn hàng:
// danh sách + thống kê theo trạng thái + phân trang
type OrderListResult struct {
	Orders     []models.Order      `json:"orders"`
	Stats      OrderStats          `json:"stats"`
	Pagination OrderListPagination `json:"pagination"`
}
