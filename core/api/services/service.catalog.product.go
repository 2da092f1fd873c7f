package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
)

// Số cột tối thiểu của một dòng CSV import sản phẩm.
// Thứ tự cột cố định: name, sku, category, wholesalePrice, retailPrice,
// stock, minStock, unit, width, height, depth, weight, supplierName,
// supplierCode, status.
const productImportMinColumns = 15

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// skuRegexFilter tạo filter so khớp SKU chính xác nhưng không phân biệt hoa thường
func skuRegexFilter(sku string) bson.M {
	return bson.M{
		"sku": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(sku) + "$", Options: "i"},
	}
}

// CreateProduct tạo sản phẩm mới, kiểm tra trùng SKU (không phân biệt hoa thường) trước khi insert
func (s *ProductService) CreateProduct(ctx context.Context, input *dto.ProductCreateInput) (*models.Product, error) {
	exists, err := s.DocumentExists(ctx, skuRegexFilter(input.SKU))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"SKU đã tồn tại",
			common.StatusConflict,
			nil,
		)
	}

	product := models.Product{
		Name:           input.Name,
		SKU:            input.SKU,
		Description:    input.Description,
		Category:       input.Category,
		WholesalePrice: input.WholesalePrice,
		RetailPrice:    input.RetailPrice,
		Stock:          input.Stock,
		MinStock:       input.MinStock,
		Unit:           input.Unit,
		Tags:           input.Tags,
		Status:         input.Status,
		Images:         input.Images,
	}
	if input.Dimensions != nil {
		product.Dimensions = models.ProductDimensions{
			Width:  input.Dimensions.Width,
			Height: input.Dimensions.Height,
			Depth:  input.Dimensions.Depth,
			Weight: input.Dimensions.Weight,
		}
	}
	if input.Supplier != nil {
		product.Supplier = models.ProductSupplier{
			Name:    input.Supplier.Name,
			Code:    input.Supplier.Code,
			Contact: input.Supplier.Contact,
		}
	}

	created, err := s.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct cập nhật sản phẩm theo các field được gửi lên
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, input *dto.ProductUpdateInput) (*models.Product, error) {
	set := map[string]interface{}{}

	if input.SKU != nil {
		filter := skuRegexFilter(*input.SKU)
		filter["_id"] = bson.M{"$ne": id}
		exists, err := s.DocumentExists(ctx, filter)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewError(common.ErrCodeBusinessOperation, "SKU đã tồn tại", common.StatusConflict, nil)
		}
		set["sku"] = *input.SKU
	}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.WholesalePrice != nil {
		set["wholesalePrice"] = *input.WholesalePrice
	}
	if input.RetailPrice != nil {
		set["retailPrice"] = *input.RetailPrice
	}
	if input.Stock != nil {
		set["stock"] = *input.Stock
	}
	if input.MinStock != nil {
		set["minStock"] = *input.MinStock
	}
	if input.Unit != nil {
		set["unit"] = *input.Unit
	}
	if input.Dimensions != nil {
		set["dimensions"] = models.ProductDimensions{
			Width:  input.Dimensions.Width,
			Height: input.Dimensions.Height,
			Depth:  input.Dimensions.Depth,
			Weight: input.Dimensions.Weight,
		}
	}
	if input.Supplier != nil {
		set["supplier"] = models.ProductSupplier{
			Name:    input.Supplier.Name,
			Code:    input.Supplier.Code,
			Contact: input.Supplier.Contact,
		}
	}
	if input.Tags != nil {
		set["tags"] = *input.Tags
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Images != nil {
		set["images"] = *input.Images
	}

	if len(set) == 0 {
		product, err := s.FindOneById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &product, nil
	}

	updated, err := s.UpdateById(ctx, id, &UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ImportCSV import sản phẩm từ file CSV.
// Dòng đầu tiên là header và bị bỏ qua. Mỗi dòng dữ liệu được xử lý độc lập:
// dòng lỗi (thiếu cột, thiếu name/sku, trùng sku) được ghi nhận {row, reason}
// và bỏ qua, các dòng hợp lệ vẫn được import bình thường.
func (s *ProductService) ImportCSV(ctx context.Context, reader io.Reader) (*dto.ProductImportResult, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1 // số cột được kiểm tra thủ công theo từng dòng
	r.TrimLeadingSpace = true

	result := &dto.ProductImportResult{
		Errors: []dto.ProductImportRowError{},
	}

	// SKU đã gặp trong chính file này, dùng để chặn trùng lặp nội bộ
	seenSKUs := map[string]bool{}

	rowNum := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Lỗi parse CSV của một dòng: ghi nhận và đọc tiếp
			rowNum++
			result.Total++
			result.Errors = append(result.Errors, dto.ProductImportRowError{
				Row:    rowNum,
				Reason: fmt.Sprintf("Dòng không đúng định dạng CSV: %v", err),
			})
			continue
		}

		// Bỏ qua dòng header
		if rowNum == 0 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}
		rowNum++
		result.Total++

		if len(record) < productImportMinColumns {
			result.Errors = append(result.Errors, dto.ProductImportRowError{
				Row:    rowNum,
				Reason: fmt.Sprintf("Thiếu cột: cần tối thiểu %d cột, nhận được %d", productImportMinColumns, len(record)),
			})
			continue
		}

		name := strings.TrimSpace(record[0])
		sku := strings.TrimSpace(record[1])
		if name == "" || sku == "" {
			result.Errors = append(result.Errors, dto.ProductImportRowError{
				Row:    rowNum,
				Reason: "Thiếu name hoặc sku",
			})
			continue
		}

		skuKey := strings.ToLower(sku)
		if seenSKUs[skuKey] {
			result.Errors = append(result.Errors, dto.ProductImportRowError{
				Row:    rowNum,
				Reason: fmt.Sprintf("SKU %s bị trùng trong file", sku),
			})
			continue
		}

		exists, err := s.DocumentExists(ctx, skuRegexFilter(sku))
		if err != nil {
			result.Errors = append(result.Errors, dto.ProductImportRowError{
				Row:    rowNum,
				Reason: fmt.Sprintf("Lỗi kiểm tra SKU: %v", err),
			})
			continue
		}
		if exists {
			result.Errors = append(result.Errors, dto.ProductImportRowError{
				Row:    rowNum,
				Reason: fmt.Sprintf("SKU %s đã tồn tại", sku),
			})
			continue
		}

		product := models.Product{
			Name:           name,
			SKU:            sku,
			Category:       strings.TrimSpace(record[2]),
			WholesalePrice: parseCSVFloat(record[3]),
			RetailPrice:    parseCSVFloat(record[4]),
			Stock:          parseCSVInt(record[5]),
			MinStock:       parseCSVInt(record[6]),
			Unit:           strings.TrimSpace(record[7]),
			Dimensions: models.ProductDimensions{
				Width:  parseCSVFloat(record[8]),
				Height: parseCSVFloat(record[9]),
				Depth:  parseCSVFloat(record[10]),
				Weight: parseCSVFloat(record[11]),
			},
			Supplier: models.ProductSupplier{
				Name: strings.TrimSpace(record[12]),
				Code: strings.TrimSpace(record[13]),
			},
			Status: strings.TrimSpace(record[14]),
		}

		if _, err := s.InsertOne(ctx, product); err != nil {
			result.Errors = append(result.Errors, dto.ProductImportRowError{
				Row:    rowNum,
				Reason: fmt.Sprintf("Lỗi lưu sản phẩm: %v", err),
			})
			continue
		}

		seenSKUs[skuKey] = true
		result.Imported++
	}

	return result, nil
}

// parseCSVFloat parse số thực từ cột CSV, giá trị không hợp lệ trả về 0
func parseCSVFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCSVInt parse số nguyên từ cột CSV, giá trị không hợp lệ trả về 0
func parseCSVInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
