package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/services"
	"github.com/tarkandemir/hygieia-admin-sub001/core/utility"
)

// DashboardHandler xử lý các request thống kê tổng hợp cho dashboard.
// Không kế thừa BaseHandler vì toàn bộ endpoint là read-only aggregation,
// không có CRUD trên một collection cụ thể.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler tạo một instance mới của DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := services.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %v", err)
	}

	return &DashboardHandler{dashboardService: dashboardService}, nil
}

// HandleStats trả về các chỉ số tổng quan 30 ngày gần nhất
func (h *DashboardHandler) HandleStats(c fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(context.Background())
	WriteResponse(c, stats, err)
	return nil
}

// HandleSales trả về chuỗi doanh thu theo ngày trong 30 ngày gần nhất
func (h *DashboardHandler) HandleSales(c fiber.Ctx) error {
	series, err := h.dashboardService.GetSalesSeries(context.Background())
	WriteResponse(c, series, err)
	return nil
}

// HandleRecentOrders trả về các đơn hàng mới nhất
func (h *DashboardHandler) HandleRecentOrders(c fiber.Ctx) error {
	limit := utility.P2Int64(c.Query("limit", "10"))
	orders, err := h.dashboardService.GetRecentOrders(context.Background(), limit)
	WriteResponse(c, orders, err)
	return nil
}

// HandleTopProducts trả về 5 sản phẩm bán chạy nhất
func (h *DashboardHandler) HandleTopProducts(c fiber.Ctx) error {
	top, err := h.dashboardService.GetTopProducts(context.Background())
	WriteResponse(c, top, err)
	return nil
}
