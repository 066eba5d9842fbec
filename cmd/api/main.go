package main

import (
	"log"

	"CustomerQuery/pkg/api"
	"CustomerQuery/pkg/config"
	"CustomerQuery/pkg/messaging"
	"CustomerQuery/pkg/nlp"
	"CustomerQuery/pkg/scheduler"
	"CustomerQuery/pkg/store"
)

func main() {
	log.Println("启动客户查询服务...")

	// 加载配置，没有配置文件时使用默认值
	cfg, err := config.LoadConfig(config.GetDefaultConfigPath())
	if err != nil {
		log.Printf("未加载配置文件（%v），使用默认配置", err)
		cfg = config.DefaultConfig()
	}

	// 创建数据仓库并加载数据，加载失败退化为空数据集
	st := store.NewStore()
	store.Load(st, cfg)

	// 创建查询参数提取器，按凭证配置选择策略
	extractor := nlp.NewExtractor(cfg)

	// 创建查询审计事件发布器（可选）
	var publisher *messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = messaging.NewPublisher(cfg.NATS.URL)
		if err != nil {
			log.Printf("警告: 初始化NATS发布器失败: %v，审计事件将被跳过", err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// 注册定时重载任务（可选）
	if cfg.Data.ReloadCron != "" {
		sched := scheduler.NewScheduler()
		if err := sched.AddReloadTask(cfg.Data.ReloadCron, func() {
			store.Load(st, cfg)
		}); err != nil {
			log.Printf("警告: %v", err)
		} else {
			sched.Start()
			defer sched.Stop()
		}
	}

	// 创建API处理程序
	handlers := api.NewHandlers(st, extractor, publisher)

	// 创建并启动服务器
	server := api.NewServer(cfg.API.Port)
	server.SetupRoutes(handlers)
	server.Start()
}
