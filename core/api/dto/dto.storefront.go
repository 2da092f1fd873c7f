package dto

// StorefrontProductFilter là bộ lọc danh sách sản phẩm công khai.
// Storefront chỉ nhìn thấy sản phẩm active và dùng giá bán lẻ.
type StorefrontProductFilter struct {
	Search   string // Tìm theo tên sản phẩm
	Category string // Lọc theo tên danh mục
}

// StorefrontOrderInput đại diện cho đơn đặt từ storefront công khai.
// Không cần đăng nhập; đơn được tạo với source=storefront, prefix SF
// và dùng giá bán lẻ khi dòng hàng không chỉ định đơn giá.
type StorefrontOrderInput struct {
	Customer        OrderCustomerInput `json:"customer" validate:"required"`
	ShippingAddress *OrderAddressInput `json:"shippingAddress,omitempty"`
	BillingAddress  *OrderAddressInput `json:"billingAddress,omitempty"`
	Items           []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
	ShippingCost    float64            `json:"shippingCost,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod   string             `json:"paymentMethod,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}
