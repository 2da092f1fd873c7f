package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
)

// SystemHandler xử lý các endpoint hệ thống (health check)
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra tình trạng server và kết nối MongoDB
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
		dbStatus = "unreachable"
	}

	statusCode := common.StatusOK
	if dbStatus != "ok" {
		statusCode = common.StatusServiceUnavailable
	}

	return JSONResponse(c, statusCode, fiber.Map{
		"status":   "up",
		"database": dbStatus,
		"time":     time.Now().UnixMilli(),
	})
}
