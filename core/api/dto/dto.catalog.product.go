package dto

// ProductDimensionsInput đại diện cho kích thước và khối lượng sản phẩm
type ProductDimensionsInput struct {
	Width  float64 `json:"width,omitempty" validate:"omitempty,min=0"`  // Chiều rộng (cm)
	Height float64 `json:"height,omitempty" validate:"omitempty,min=0"` // Chiều cao (cm)
	Depth  float64 `json:"depth,omitempty" validate:"omitempty,min=0"`  // Chiều sâu (cm)
	Weight float64 `json:"weight,omitempty" validate:"omitempty,min=0"` // Khối lượng (kg)
}

// ProductSupplierInput đại diện cho thông tin nhà cung cấp của sản phẩm
type ProductSupplierInput struct {
	Name    string `json:"name,omitempty"`    // Tên nhà cung cấp
	Code    string `json:"code,omitempty"`    // Mã nhà cung cấp
	Contact string `json:"contact,omitempty"` // Thông tin liên hệ
}

// ProductCreateInput đại diện cho dữ liệu đầu vào khi tạo sản phẩm
type ProductCreateInput struct {
	Name           string                  `json:"name" validate:"required"`                                   // Tên sản phẩm (bắt buộc)
	SKU            string                  `json:"sku" validate:"required"`                                    // Mã SKU, duy nhất không phân biệt hoa thường (bắt buộc)
	Description    string                  `json:"description,omitempty"`                                      // Mô tả
	Category       string                  `json:"category" validate:"required"`                               // Tên danh mục (liên kết theo tên, không phải ID)
	WholesalePrice float64                 `json:"wholesalePrice" validate:"min=0"`                            // Giá bán sỉ
	RetailPrice    float64                 `json:"retailPrice" validate:"min=0"`                               // Giá bán lẻ
	Stock          int64                   `json:"stock" validate:"min=0"`                                     // Tồn kho ban đầu
	MinStock       int64                   `json:"minStock" validate:"min=0"`                                  // Ngưỡng cảnh báo tồn kho thấp
	Unit           string                  `json:"unit,omitempty"`                                             // Đơn vị tính
	Dimensions     *ProductDimensionsInput `json:"dimensions,omitempty"`                                       // Kích thước
	Supplier       *ProductSupplierInput   `json:"supplier,omitempty"`                                         // Nhà cung cấp
	Tags           []string                `json:"tags,omitempty"`                                             // Tags tìm kiếm
	Status         string                  `json:"status,omitempty" validate:"omitempty,oneof=active inactive draft"` // Trạng thái (mặc định active)
	Images         []string                `json:"images,omitempty"`                                           // Danh sách URL hình ảnh
}

// ProductUpdateInput đại diện cho dữ liệu đầu vào khi cập nhật sản phẩm.
// Các field đều optional, chỉ update field nào được gửi lên.
type ProductUpdateInput struct {
	Name           *string                 `json:"name,omitempty"`
	SKU            *string                 `json:"sku,omitempty"`
	Description    *string                 `json:"description,omitempty"`
	Category       *string                 `json:"category,omitempty"`
	WholesalePrice *float64                `json:"wholesalePrice,omitempty" validate:"omitempty,min=0"`
	RetailPrice    *float64                `json:"retailPrice,omitempty" validate:"omitempty,min=0"`
	Stock          *int64                  `json:"stock,omitempty" validate:"omitempty,min=0"`
	MinStock       *int64                  `json:"minStock,omitempty" validate:"omitempty,min=0"`
	Unit           *string                 `json:"unit,omitempty"`
	Dimensions     *ProductDimensionsInput `json:"dimensions,omitempty"`
	Supplier       *ProductSupplierInput   `json:"supplier,omitempty"`
	Tags           *[]string               `json:"tags,omitempty"`
	Status         *string                 `json:"status,omitempty" validate:"omitempty,oneof=active inactive draft"`
	Images         *[]string               `json:"images,omitempty"`
}

// ProductImportRowError mô tả lỗi của một dòng trong file CSV import
type ProductImportRowError struct {
	Row    int    `json:"row"`    // Số thứ tự dòng trong file (bắt đầu từ 1, không tính header)
	Reason string `json:"reason"` // Lý do lỗi
}

// ProductImportResult là kết quả import sản phẩm từ file CSV.
// Các dòng lỗi không làm hỏng cả file: dòng hợp lệ vẫn được import.
type ProductImportResult struct {
	Imported int                     `json:"imported"` // Số sản phẩm import thành công
	Total    int                     `json:"total"`    // Tổng số dòng dữ liệu trong file
	Errors   []ProductImportRowError `json:"errors"`   // Chi tiết lỗi theo dòng
}
