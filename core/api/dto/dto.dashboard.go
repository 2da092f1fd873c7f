package dto

// DashboardMetric là một chỉ số tổng hợp kèm phần trăm thay đổi so với
// 30 ngày liền trước. Change = 0 khi kỳ trước bằng 0 (tránh chia cho 0).
type DashboardMetric struct {
	Value  float64 `json:"value"`  // Giá trị trong 30 ngày gần nhất
	Change float64 `json:"change"` // Phần trăm thay đổi so với 30 ngày trước đó
}

// DashboardStats là các chỉ số tổng quan trên dashboard
type DashboardStats struct {
	Revenue   DashboardMetric `json:"revenue"`   // Doanh thu (chỉ tính đơn không bị hủy)
	Orders    DashboardMetric `json:"orders"`    // Số đơn hàng
	Customers DashboardMetric `json:"customers"` // Số khách hàng (đếm email khách distinct)
	Products  DashboardMetric `json:"products"`  // Số sản phẩm đang active
	LowStock  int64           `json:"lowStock"`  // Số sản phẩm dưới ngưỡng minStock
}

// SalesPoint là một điểm trên biểu đồ doanh thu theo ngày.
// Chuỗi trả về đủ 30 ngày, ngày không có đơn được điền 0.
type SalesPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// TopProduct là một sản phẩm trong bảng xếp hạng bán chạy
type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int64   `json:"quantity"` // Tổng số lượng đã bán
	Revenue   float64 `json:"revenue"`  // Tổng doanh thu từ sản phẩm
	Stock     int64   `json:"stock"`    // Tồn kho hiện tại (0 nếu sản phẩm đã xóa)
}
