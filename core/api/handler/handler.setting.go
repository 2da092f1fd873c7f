package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/dto"
	"github.com/tarkandemir/hygieia-admin-sub001/core/api/services"
)

// SettingHandler xử lý các request đọc / ghi cấu hình hệ thống.
// Cấu hình là một document duy nhất nên không dùng CRUD theo id.
type SettingHandler struct {
	settingService *services.SettingService
}

// NewSettingHandler tạo một instance mới của SettingHandler
func NewSettingHandler() (*SettingHandler, error) {
	settingService, err := services.NewSettingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create setting service: %v", err)
	}

	return &SettingHandler{settingService: settingService}, nil
}

// HandleGet trả về document cấu hình, tự tạo nếu chưa có
func (h *SettingHandler) HandleGet(c fiber.Ctx) error {
	setting, err := h.settingService.GetSettings(context.Background())
	WriteResponse(c, setting, err)
	return nil
}

// HandleUpdate thay thế toàn bộ túi key-value cấu hình
func (h *SettingHandler) HandleUpdate(c fiber.Ctx) error {
	var input dto.SettingUpdateInput
	if err := parseBody(c, &input); err != nil {
		WriteResponse(c, nil, err)
		return nil
	}

	setting, err := h.settingService.ReplaceSettings(context.Background(), input.Data)
	WriteResponse(c, setting, err)
	return nil
}
