package store

import (
	"log"

	"CustomerQuery/pkg/config"
)

// Load 按配置的数据源类型加载数据
// 任何失败都只记录日志并退化为空数据集
func Load(s *Store, cfg *config.Config) {
	switch cfg.Data.Source {
	case "postgres":
		s.LoadPostgres(cfg)
	case "excel":
		s.LoadExcel(cfg.Data.File)
	default:
		log.Printf("警告: 未知的数据源类型 %s，使用空数据", cfg.Data.Source)
		s.Swap(nil, nil)
	}
}
