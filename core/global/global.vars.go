package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tarkandemir/hygieia-admin-sub001/config"
	"github.com/tarkandemir/hygieia-admin-sub001/core/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Categories    string // Tên collection cho danh mục sản phẩm
	Products      string // Tên collection cho sản phẩm
	Orders        string // Tên collection cho đơn hàng
	Notifications string // Tên collection cho thông báo
	Settings      string // Tên collection cho cấu hình hệ thống (singleton)
}

// Các biến toàn cục
var Validate *validator.Validate                                          // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                         // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                            // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
