package middleware

import (
	"testing"
	"time"

	models "github.com/tarkandemir/hygieia-admin-sub001/core/api/models/mongodb"
	"github.com/tarkandemir/hygieia-admin-sub001/core/utility"
)

func newTestAuthManager() *AuthManager {
	return &AuthManager{
		Cache: utility.NewCache(time.Minute, time.Minute),
	}
}

func TestHasPermission_AdminWildcard(t *testing.T) {
	am := newTestAuthManager()

	for _, perm := range []string{"User.Delete", "Setting.Update", "Order.Insert", "Dashboard.Read"} {
		if !am.hasPermission(models.RoleAdmin, perm) {
			t.Errorf("admin phải có quyền %s", perm)
		}
	}
}

func TestHasPermission_ManagerReadAndWrite(t *testing.T) {
	am := newTestAuthManager()

	// Đọc mọi resource qua wildcard *.Read
	for _, perm := range []string{"User.Read", "Order.Read", "Dashboard.Read"} {
		if !am.hasPermission(models.RoleManager, perm) {
			t.Errorf("manager phải đọc được %s", perm)
		}
	}

	// Ghi trên catalog và đơn hàng
	for _, perm := range []string{"Category.Insert", "Product.Update", "Order.Insert"} {
		if !am.hasPermission(models.RoleManager, perm) {
			t.Errorf("manager phải có quyền %s", perm)
		}
	}

	// Không được quản lý người dùng hay xóa dữ liệu
	for _, perm := range []string{"User.Insert", "User.Delete", "Product.Delete", "Setting.Update"} {
		if am.hasPermission(models.RoleManager, perm) {
			t.Errorf("manager không được có quyền %s", perm)
		}
	}
}

func TestHasPermission_EmployeeReadOnly(t *testing.T) {
	am := newTestAuthManager()

	// Chỉ đọc được catalog, đơn hàng và dashboard
	for _, perm := range []string{"Category.Read", "Product.Read", "Order.Read", "Dashboard.Read"} {
		if !am.hasPermission(models.RoleEmployee, perm) {
			t.Errorf("employee phải đọc được %s", perm)
		}
	}
	for _, perm := range []string{"Product.Insert", "Order.Update", "Category.Delete"} {
		if am.hasPermission(models.RoleEmployee, perm) {
			t.Errorf("employee không được có quyền %s", perm)
		}
	}
}

// TestHasPermission_EmployeeCannotReadUsers đảm bảo employee không đọc được
// dữ liệu người dùng: quản lý người dùng chỉ dành cho admin và manager.
func TestHasPermission_EmployeeCannotReadUsers(t *testing.T) {
	am := newTestAuthManager()

	for _, perm := range []string{"User.Read", "User.Insert", "User.Update", "User.Delete", "Setting.Update"} {
		if am.hasPermission(models.RoleEmployee, perm) {
			t.Errorf("employee không được có quyền %s", perm)
		}
	}
}

func TestHasPermission_UnknownRole(t *testing.T) {
	am := newTestAuthManager()

	if am.hasPermission("superuser", "Product.Read") {
		t.Error("role không tồn tại không được có quyền nào")
	}
	if am.hasPermission("", "Product.Read") {
		t.Error("role rỗng không được có quyền nào")
	}
}

func TestHasPermission_CachedBetweenCalls(t *testing.T) {
	am := newTestAuthManager()

	// Gọi hai lần, lần hai đi qua cache, kết quả phải giống nhau
	first := am.hasPermission(models.RoleManager, "Order.Insert")
	second := am.hasPermission(models.RoleManager, "Order.Insert")
	if first != second {
		t.Error("kết quả quyền phải ổn định giữa các lần gọi")
	}
}
