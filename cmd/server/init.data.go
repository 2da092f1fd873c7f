package main

import (
	"github.com/tarkandemir/hygieia-admin-sub001/core/api/services"
	"github.com/tarkandemir/hygieia-admin-sub001/core/global"
	"github.com/tarkandemir/hygieia-admin-sub001/core/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định: tài khoản admin đầu tiên
// và document cấu hình hệ thống.
func InitDefaultData() {
	log := logger.GetAppLogger()

	initService, err := services.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// Đảm bảo document settings tồn tại
	if err := initService.InitDefaultSettings(); err != nil {
		log.Warnf("Failed to initialize default settings: %v", err)
	} else {
		log.Info("Default settings ensured")
	}

	// Seed admin mặc định, chỉ khi bật INITMODE
	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("INITMODE disabled, skipping admin seed")
		return
	}

	if err := initService.InitAdminUser(); err != nil {
		log.Fatalf("Failed to initialize admin user: %v", err)
	}
}
