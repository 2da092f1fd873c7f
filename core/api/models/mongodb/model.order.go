package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của đơn hàng.
// Luồng thông thường: pending → confirmed → processing → shipped → delivered,
// cancelled có thể đến từ mọi trạng thái chưa delivered. Hệ thống không chặn
// các bước nhảy trạng thái, chỉ chạy side effect khi vào shipped/delivered/cancelled.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Các trạng thái thanh toán
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Nguồn tạo đơn hàng
const (
	OrderSourceAdmin      = "admin"
	OrderSourceStorefront = "storefront"
)

// OrderCustomer là bản sao thông tin khách hàng tại thời điểm đặt đơn,
// không tham chiếu tới User
type OrderCustomer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`
}

// OrderAddress là địa chỉ giao hàng / thanh toán
type OrderAddress struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

// OrderItem là một dòng hàng trong đơn, đóng băng thông tin sản phẩm tại thời
// điểm đặt (name/sku/category/unitPrice là bản sao, thay đổi catalog về sau
// không ảnh hưởng đơn đã đặt). TotalPrice = Quantity × UnitPrice.
type OrderItem struct {
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	Name       string             `json:"name" bson:"name"`
	SKU        string             `json:"sku" bson:"sku"`
	Category   string             `json:"category,omitempty" bson:"category,omitempty"`
	Quantity   int64              `json:"quantity" bson:"quantity"`
	UnitPrice  float64            `json:"unitPrice" bson:"unitPrice"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"`
}

// Order định nghĩa đơn hàng.
// TotalAmount = Subtotal + TaxAmount + ShippingCost - DiscountAmount, luôn được
// tính lại khi items thay đổi, không bao giờ sửa trực tiếp.
// StockRestored đánh dấu stock đã được cộng trả (khi hủy đơn) để tránh cộng
// trả lần hai khi xóa đơn đã hủy.
type Order struct {
	ID                    primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	OrderNumber           string              `json:"orderNumber" bson:"orderNumber" index:"unique"` // SP<YY><MM><DD><seq> hoặc SF... cho storefront
	Customer              OrderCustomer       `json:"customer" bson:"customer"`
	BillingAddress        OrderAddress        `json:"billingAddress,omitempty" bson:"billingAddress,omitempty"`
	ShippingAddress       OrderAddress        `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	Items                 []OrderItem         `json:"items" bson:"items"`
	Subtotal              float64             `json:"subtotal" bson:"subtotal"`
	TaxAmount             float64             `json:"taxAmount" bson:"taxAmount"`
	ShippingCost          float64             `json:"shippingCost" bson:"shippingCost"`
	DiscountAmount        float64             `json:"discountAmount" bson:"discountAmount"`
	TotalAmount           float64             `json:"totalAmount" bson:"totalAmount"`
	Status                string              `json:"status" bson:"status" index:"single:1" default:"pending"`
	PaymentStatus         string              `json:"paymentStatus" bson:"paymentStatus" default:"pending"`
	PaymentMethod         string              `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	TrackingNumber        string              `json:"trackingNumber,omitempty" bson:"trackingNumber,omitempty"`
	Notes                 string              `json:"notes,omitempty" bson:"notes,omitempty"`
	OrderDate             int64               `json:"orderDate" bson:"orderDate" index:"single:-1,order:-1"`
	EstimatedDeliveryDate int64               `json:"estimatedDeliveryDate,omitempty" bson:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    int64               `json:"actualDeliveryDate,omitempty" bson:"actualDeliveryDate,omitempty"`
	ShippedAt             int64               `json:"shippedAt,omitempty" bson:"shippedAt,omitempty"`
	StockRestored         bool                `json:"-" bson:"stockRestored"`
	Source                string              `json:"source" bson:"source" default:"admin"` // admin | storefront
	CreatedBy             *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"` // nil với đơn storefront
	CreatedAt             int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt             int64               `json:"updatedAt" bson:"updatedAt"`
}
