// Package router định nghĩa toàn bộ route của API
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/tarkandemir/hygieia-admin-sub001/core/api/handler"
	"github.com/tarkandemir/hygieia-admin-sub001/core/api/middleware"
)

// CRUDHandler định nghĩa interface cho các handler CRUD dùng chung
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateMany(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	FindOneAndUpdate(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	FindOneAndDelete(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// CRUDConfig cấu hình các operation được mở cho mỗi resource
type CRUDConfig struct {
	// Create
	InsOne  bool
	InsMany bool

	// Read
	Find     bool
	FindOne  bool
	FindById bool
	FindIds  bool
	Paginate bool

	// Update
	UpdOne  bool
	UpdMany bool
	UpdById bool
	FindUpd bool

	// Delete
	DelOne  bool
	DelMany bool
	DelById bool
	FindDel bool

	// Other
	Count    bool
	Distinct bool
	Upsert   bool
	Exists   bool
}

// Các config dùng chung cho các resource
var (
	// ReadWriteConfig mở đầy đủ CRUD
	ReadWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdMany: true, UpdById: true,
		FindUpd: true,
		DelOne:  true, DelMany: true, DelById: true,
		FindDel: true,
		Count:   true, Distinct: true,
		Upsert: true, Exists: true,
	}

	// StandardConfig mở các operation theo id + tìm kiếm, đóng các
	// operation hàng loạt (insert-many, update-many, delete-many)
	StandardConfig = CRUDConfig{
		InsOne: true,
		Find:   true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdById: true,
		DelById: true,
		Count:   true, Distinct: true,
		Exists: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() trên
// group con. Fiber v3 không chạy middleware khi truyền trực tiếp vào
// router.Get(path, middleware, handler), nên mọi route có middleware phải đi
// qua hàm này.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, h fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, h)
	case "POST":
		routeGroup.Post(path, h)
	case "PUT":
		routeGroup.Put(path, h)
	case "PATCH":
		routeGroup.Patch(path, h)
	case "DELETE":
		routeGroup.Delete(path, h)
	}
}

// registerCRUDRoutes đăng ký các route CRUD cho một resource.
// Mỗi operation được gate bằng permission `<permissionPrefix>.<Insert|Read|Update|Delete>`.
func registerCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, permissionPrefix string) {
	authInsert := middleware.AuthMiddleware(permissionPrefix + ".Insert")
	authRead := middleware.AuthMiddleware(permissionPrefix + ".Read")
	authUpdate := middleware.AuthMiddleware(permissionPrefix + ".Update")
	authDelete := middleware.AuthMiddleware(permissionPrefix + ".Delete")

	// Create operations
	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-one", []fiber.Handler{authInsert}, h.InsertOne)
	}
	if config.InsMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-many", []fiber.Handler{authInsert}, h.InsertMany)
	}

	// Read operations
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", []fiber.Handler{authRead}, h.Find)
	}
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-one", []fiber.Handler{authRead}, h.FindOne)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", []fiber.Handler{authRead}, h.FindOneById)
	}
	if config.FindIds {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/find-by-ids", []fiber.Handler{authRead}, h.FindManyByIds)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", []fiber.Handler{authRead}, h.FindWithPagination)
	}

	// Update operations
	if config.UpdOne {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-one", []fiber.Handler{authUpdate}, h.UpdateOne)
	}
	if config.UpdMany {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-many", []fiber.Handler{authUpdate}, h.UpdateMany)
	}
	if config.UpdById {
		// PATCH theo chuẩn partial update, PUT giữ lại cho client cũ
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", []fiber.Handler{authUpdate}, h.UpdateById)
		RegisterRouteWithMiddleware(router, prefix, "PATCH", "/:id", []fiber.Handler{authUpdate}, h.UpdateById)
	}
	if config.FindUpd {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/find-one-and-update", []fiber.Handler{authUpdate}, h.FindOneAndUpdate)
	}

	// Delete operations
	if config.DelOne {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-one", []fiber.Handler{authDelete}, h.DeleteOne)
	}
	if config.DelMany {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-many", []fiber.Handler{authDelete}, h.DeleteMany)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", []fiber.Handler{authDelete}, h.DeleteById)
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", []fiber.Handler{authDelete}, h.DeleteById)
	}
	if config.FindDel {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/find-one-and-delete", []fiber.Handler{authDelete}, h.FindOneAndDelete)
	}

	// Other operations
	if config.Count {
		// Count chỉ cần đăng nhập, không cần permission cụ thể
		authOnly := middleware.AuthMiddleware("")
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", []fiber.Handler{authOnly}, h.CountDocuments)
	}
	if config.Distinct {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/distinct/:field", []fiber.Handler{authRead}, h.Distinct)
	}
	if config.Upsert {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/upsert-one", []fiber.Handler{authUpdate}, h.Upsert)
	}
	if config.Exists {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/exists", []fiber.Handler{authRead}, h.DocumentExists)
	}
}

// SetupRoutes thiết lập toàn bộ route của ứng dụng:
// nhóm quản trị /api/v1 (yêu cầu xác thực + phân quyền) và nhóm công khai
// /api/v1/storefront (không xác thực).
func SetupRoutes(app *fiber.App) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)

	// Khởi tạo các handler
	userHandler, err := handler.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %v", err)
	}
	categoryHandler, err := handler.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %v", err)
	}
	productHandler, err := handler.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %v", err)
	}
	orderHandler, err := handler.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %v", err)
	}
	dashboardHandler, err := handler.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %v", err)
	}
	notificationHandler, err := handler.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %v", err)
	}
	settingHandler, err := handler.NewSettingHandler()
	if err != nil {
		return fmt.Errorf("failed to create setting handler: %v", err)
	}
	storefrontHandler, err := handler.NewStorefrontHandler()
	if err != nil {
		return fmt.Errorf("failed to create storefront handler: %v", err)
	}
	systemHandler := handler.NewSystemHandler()

	// Health check, không cần xác thực
	v1.Get("/health", systemHandler.HandleHealth)

	// Auth: login công khai, me/logout chỉ cần đăng nhập
	authOnly := middleware.AuthMiddleware("")
	v1.Post("/auth/login", userHandler.HandleLogin)
	RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authOnly}, userHandler.HandleMe)
	RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authOnly}, userHandler.HandleLogout)

	// Quản lý người dùng
	registerCRUDRoutes(v1, "/users", userHandler, StandardConfig, "User")

	// Catalog
	registerCRUDRoutes(v1, "/categories", categoryHandler, StandardConfig, "Category")
	registerCRUDRoutes(v1, "/products", productHandler, StandardConfig, "Product")
	RegisterRouteWithMiddleware(v1, "/products", "POST", "/import",
		[]fiber.Handler{middleware.AuthMiddleware("Product.Insert")}, productHandler.HandleImport)

	// Đơn hàng: danh sách dùng envelope riêng (orders + stats + pagination)
	registerCRUDRoutes(v1, "/orders", orderHandler, StandardConfig, "Order")
	RegisterRouteWithMiddleware(v1, "/orders", "GET", "/",
		[]fiber.Handler{middleware.AuthMiddleware("Order.Read")}, orderHandler.HandleList)

	// Dashboard: read-only, mọi role đều đọc được qua wildcard *.Read
	authDashboard := middleware.AuthMiddleware("Dashboard.Read")
	RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", []fiber.Handler{authDashboard}, dashboardHandler.HandleStats)
	RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/sales", []fiber.Handler{authDashboard}, dashboardHandler.HandleSales)
	RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/recent-orders", []fiber.Handler{authDashboard}, dashboardHandler.HandleRecentOrders)
	RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/top-products", []fiber.Handler{authDashboard}, dashboardHandler.HandleTopProducts)

	// Thông báo: đọc / đánh dấu đọc / xóa giới hạn trong thông báo của chính
	// người dùng, tạo mới cần permission
	RegisterRouteWithMiddleware(v1, "/notifications", "POST", "/",
		[]fiber.Handler{middleware.AuthMiddleware("Notification.Insert")}, notificationHandler.InsertOne)
	RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/", []fiber.Handler{authOnly}, notificationHandler.HandleListOwn)
	RegisterRouteWithMiddleware(v1, "/notifications", "PATCH", "/:id/read", []fiber.Handler{authOnly}, notificationHandler.HandleMarkRead)
	RegisterRouteWithMiddleware(v1, "/notifications", "POST", "/read-all", []fiber.Handler{authOnly}, notificationHandler.HandleMarkAllRead)
	RegisterRouteWithMiddleware(v1, "/notifications", "DELETE", "/:id", []fiber.Handler{authOnly}, notificationHandler.DeleteById)

	// Cấu hình hệ thống: đọc chỉ cần đăng nhập, ghi cần permission
	RegisterRouteWithMiddleware(v1, "/settings", "GET", "/", []fiber.Handler{authOnly}, settingHandler.HandleGet)
	RegisterRouteWithMiddleware(v1, "/settings", "PUT", "/",
		[]fiber.Handler{middleware.AuthMiddleware("Setting.Update")}, settingHandler.HandleUpdate)

	// Storefront công khai, không xác thực
	storefront := v1.Group("/storefront")
	storefront.Get("/categories", storefrontHandler.HandleListCategories)
	storefront.Get("/products", storefrontHandler.HandleListProducts)
	storefront.Get("/products/:id", storefrontHandler.HandleGetProduct)
	storefront.Post("/orders", storefrontHandler.HandleCreateOrder)
	storefront.Get("/orders/:orderNumber", storefrontHandler.HandleGetOrder)

	return nil
}
