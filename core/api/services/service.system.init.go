package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
	"github.com/tarkandemir/hygieia-admin-sub001/core/logger"
)

// InitService khởi tạo dữ liệu mặc định cho hệ thống:
// tài khoản admin đầu tiên và document cấu hình mặc định.
type InitService struct {
	userService    *UserService
	settingService *SettingService
}

// NewInitService tạo mới một đối tượng InitService
func NewInitService() (*InitService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	settingService, err := NewSettingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create setting service: %v", err)
	}

	return &InitService{
		userService:    userService,
		settingService: settingService,
	}, nil
}

// InitAdminUser tạo tài khoản admin mặc định từ cấu hình INIT_ADMIN_EMAIL /
// INIT_ADMIN_PASSWORD nếu hệ thống chưa có admin nào.
// Bỏ qua (không lỗi) khi đã có admin hoặc khi thiếu mật khẩu trong config.
func (h *InitService) InitAdminUser() error {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig
	ctx := context.TODO()

	// Kiểm tra đã có admin chưa
	count, err := h.userService.CountDocuments(ctx, bson.M{"role": "admin"})
	if err != nil {
		return fmt.Errorf("failed to count admin users: %v", err)
	}
	if count > 0 {
		log.Info("Admin user already exists, skipping seed")
		return nil
	}

	if cfg.InitAdminPassword == "" {
		log.Warn("INIT_ADMIN_PASSWORD chưa được cấu hình, bỏ qua tạo admin mặc định")
		return nil
	}

	input := &dto.UserCreateInput{
		Name:     "Administrator",
		Email:    cfg.InitAdminEmail,
		Password: cfg.InitAdminPassword,
		Role:     "admin",
	}

	created, err := h.userService.CreateUser(ctx, input)
	if err != nil {
		// Email đã tồn tại (user admin được tạo bằng tay với role khác) thì bỏ qua
		var commonErr *common.Error
		if errors.As(err, &commonErr) && commonErr.StatusCode == common.StatusConflict {
			log.Warnf("Không thể seed admin, email %s đã tồn tại", cfg.InitAdminEmail)
			return nil
		}
		return fmt.Errorf("failed to create admin user: %v", err)
	}

	log.Infof("Seeded default admin user %s (ID: %s)", created.Email, created.ID.Hex())
	return nil
}

// InitDefaultSettings đảm bảo document cấu hình hệ thống tồn tại.
// GetSettings tự tạo document rỗng nếu chưa có.
func (h *InitService) InitDefaultSettings() error {
	_, err := h.settingService.GetSettings(context.TODO())
	if err != nil {
		return fmt.Errorf("failed to ensure settings document: %v", err)
	}
	return nil
}
