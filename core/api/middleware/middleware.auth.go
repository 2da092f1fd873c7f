package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/api/services"
	"github.com/tarkandemir/hygieia-admin-sub001/core/common"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
	"github.com/tarkandemir/hygieia-admin-sub001/core/logger"
	"github.com/tarkandemir/hygieia-admin-sub001/core/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD *services.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := services.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// rolePermissions là bảng phân quyền tĩnh theo role.
// Permission có dạng "<Resource>.<Insert|Read|Update|Delete>".
// Admin có mọi quyền; Manager được đọc tất cả và ghi trên danh mục, sản phẩm, đơn hàng;
// Employee chỉ được đọc danh mục, sản phẩm, đơn hàng và dashboard —
// liệt kê tường minh, KHÔNG dùng wildcard, để employee không đọc được
// dữ liệu người dùng.
var rolePermissions = map[string][]string{
	models.RoleAdmin: {"*"},
	models.RoleManager: {
		"*.Read",
		"Category.Insert", "Category.Update",
		"Product.Insert", "Product.Update",
		"Order.Insert", "Order.Update",
		"Notification.Insert", "Notification.Update",
	},
	models.RoleEmployee: {
		"Category.Read",
		"Product.Read",
		"Order.Read",
		"Dashboard.Read",
	},
}

// getRolePermissions lấy danh sách permissions của role từ cache hoặc bảng tĩnh
func (am *AuthManager) getRolePermissions(role string) map[string]bool {
	cacheKey := "role_permissions:" + role

	// Kiểm tra cache trước để tối ưu hiệu suất
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(map[string]bool)
	}

	permissions := make(map[string]bool)
	for _, p := range rolePermissions[role] {
		permissions[p] = true
	}

	am.Cache.Set(cacheKey, permissions)
	return permissions
}

// hasPermission kiểm tra role có permission yêu cầu không (hỗ trợ wildcard "*" và "*.Read")
func (am *AuthManager) hasPermission(role string, requirePermission string) bool {
	permissions := am.getRolePermissions(role)

	if permissions["*"] {
		return true
	}
	if permissions[requirePermission] {
		return true
	}

	// Wildcard theo action: "*.Read" khớp mọi "<Resource>.Read"
	parts := strings.Split(requirePermission, ".")
	if len(parts) == 2 && permissions["*."+parts[1]] {
		return true
	}

	return false
}

// AuthMiddleware middleware xác thực cho Fiber.
// Xác thực token (chữ ký + hạn), tìm user đang giữ token trong database,
// kiểm tra tài khoản còn hoạt động rồi mới kiểm tra permission theo role.
func AuthMiddleware(requirePermission string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Verify chữ ký và hạn của JWT trước khi chạm database
		if _, err := utility.VerifyToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Tìm user có token
		// Ưu tiên query field "token" (token mới nhất) trước vì nó được cập nhật mỗi lần login
		// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid)
		var user models.User
		var err error

		user, err = authManager.UserCRUD.FindOne(context.Background(), bson.M{"token": token}, nil)
		if err != nil {
			user, err = authManager.UserCRUD.FindOne(context.Background(), bson.M{"tokens.jwtToken": token}, nil)
		}

		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra tài khoản còn hoạt động không
		if !user.IsActive {
			HandleErrorResponse(c, common.ErrAccountInactive)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", utility.ObjectID2String(user.ID))
		c.Locals("user", user)
		c.Locals("user_role", user.Role)

		// Nếu không yêu cầu permission cụ thể, cho phép truy cập NGAY
		// Đây là endpoint đặc biệt như /auth/me - chỉ cần xác thực, không cần permission
		if requirePermission == "" {
			return c.Next()
		}

		// Kiểm tra permission theo role
		if !authManager.hasPermission(user.Role, requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":             user.ID.Hex(),
				"user_email":          user.Email,
				"user_role":           user.Role,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("❌ [AUTH] User does not have required permission")
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		// Lưu permission name vào context để handler sử dụng
		c.Locals("permission_name", requirePermission)
		return c.Next()
	}
}
