package services

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
)

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục sản phẩm
type CategoryService struct {
	*BaseServiceMongoImpl[models.Category]
	productCollection *BaseServiceMongoImpl[models.Product]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Category](categoryCollection),
		productCollection:    NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// nameRegexFilter tạo filter so khớp tên chính xác nhưng không phân biệt hoa thường
func nameRegexFilter(name string) bson.M {
	return bson.M{
		"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"},
	}
}

// CreateCategory tạo danh mục mới, kiểm tra trùng tên (không phân biệt hoa thường) trước khi insert
func (s *CategoryService) CreateCategory(ctx context.Context, input *dto.CategoryCreateInput) (*models.Category, error) {
	exists, err := s.DocumentExists(ctx, nameRegexFilter(input.Name))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Tên danh mục đã tồn tại",
			common.StatusConflict,
			nil,
		)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		Order:       input.Order,
		IsActive:    isActive,
	}

	created, err := s.InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory cập nhật danh mục theo các field được gửi lên.
// Đổi tên danh mục KHÔNG cập nhật lại field category của các sản phẩm đang
// tham chiếu tên cũ — các sản phẩm đó sẽ trỏ tới tên không còn tồn tại.
func (s *CategoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, input *dto.CategoryUpdateInput) (*models.Category, error) {
	set := map[string]interface{}{}

	if input.Name != nil {
		// Tên mới không được trùng với danh mục khác
		filter := nameRegexFilter(*input.Name)
		filter["_id"] = bson.M{"$ne": id}
		exists, err := s.DocumentExists(ctx, filter)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewError(common.ErrCodeBusinessOperation, "Tên danh mục đã tồn tại", common.StatusConflict, nil)
		}
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Icon != nil {
		set["icon"] = *input.Icon
	}
	if input.Color != nil {
		set["color"] = *input.Color
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	if len(set) == 0 {
		category, err := s.FindOneById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &category, nil
	}

	updated, err := s.UpdateById(ctx, id, &UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory xóa danh mục. Bị chặn khi còn sản phẩm tham chiếu danh mục
// theo tên; thông báo lỗi kèm số lượng sản phẩm đang dùng.
func (s *CategoryService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	category, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.productCollection.CountDocuments(ctx, bson.M{"category": category.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Không thể xóa danh mục: còn %d sản phẩm đang thuộc danh mục này", count),
			common.StatusBadRequest,
			nil,
		)
	}

	return s.DeleteById(ctx, id)
}
