package config

import (
	"fmt"
	"time"

	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 初始化数据库连接
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	// 设置连接池
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自动迁移表结构
	if err := migrateDB(); err != nil {
		return fmt.Errorf("数据库迁移失败: %v", err)
	}

	// 预置励志名言
	if err := seedQuotes(); err != nil {
		return fmt.Errorf("名言数据初始化失败: %v", err)
	}

	return nil
}

// migrateDB 进行数据库表结构迁移
func migrateDB() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.JournalEntry{},
		&models.Quote{},
		&models.SavedQuote{},
	)
}

// seedQuotes 在名言表为空时写入内置名言
func seedQuotes() error {
	var count int64
	if err := DB.Model(&models.Quote{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	quotes := models.SeedQuotes()
	return DB.Create(&quotes).Error
}
