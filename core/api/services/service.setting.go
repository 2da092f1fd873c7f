package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
)

// SettingService là cấu trúc chứa các phương thức đọc/ghi cấu hình hệ thống.
// Cấu hình là một document duy nhất, ghi nguyên khối.
type SettingService struct {
	*BaseServiceMongoImpl[models.Setting]
}

// NewSettingService tạo mới SettingService
func NewSettingService() (*SettingService, error) {
	settingCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}

	return &SettingService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Setting](settingCollection),
	}, nil
}

// GetSettings trả về document cấu hình, tự tạo document rỗng nếu chưa có
func (s *SettingService) GetSettings(ctx context.Context) (*models.Setting, error) {
	setting, err := s.FindOne(ctx, bson.M{}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			created, insertErr := s.InsertOne(ctx, models.Setting{Data: map[string]interface{}{}})
			if insertErr != nil {
				return nil, insertErr
			}
			return &created, nil
		}
		return nil, err
	}
	return &setting, nil
}

// ReplaceSettings thay thế toàn bộ túi key-value cấu hình
func (s *SettingService) ReplaceSettings(ctx context.Context, data map[string]interface{}) (*models.Setting, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, current.ID, &UpdateData{
		Set: map[string]interface{}{"data": data},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
