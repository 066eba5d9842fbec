package store

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"CustomerQuery/pkg/config"
	"CustomerQuery/pkg/model"
)

// LoadPostgres 从Postgres一次性加载数据并替换当前快照
// 连接或查询失败时退化为空数据集，不中断服务
func (s *Store) LoadPostgres(cfg *config.Config) {
	customers, events, err := readPostgres(cfg)
	if err != nil {
		log.Printf("警告: 从数据库加载数据失败: %v，使用空数据", err)
		s.Swap(nil, nil)
		return
	}

	s.Swap(customers, events)
	log.Printf("已加载客户数据: %d 条, 行为事件: %d 条", len(customers), len(events))
}

// readPostgres 读取customers和events两张表
func readPostgres(cfg *config.Config) ([]model.CustomerRecord, []model.EventRecord, error) {
	pgCfg := cfg.Data.Postgres

	// 构建连接字符串
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		pgCfg.Host, pgCfg.Port, pgCfg.User, pgCfg.Password, pgCfg.DBName, pgCfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	var customers []model.CustomerRecord
	if err := db.Find(&customers).Error; err != nil {
		return nil, nil, fmt.Errorf("查询客户表失败: %w", err)
	}

	var events []model.EventRecord
	if err := db.Find(&events).Error; err != nil {
		return nil, nil, fmt.Errorf("查询事件表失败: %w", err)
	}

	return customers, events, nil
}
