package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler 任务调度器，负责定时重新加载数据
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler 创建任务调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// AddReloadTask 按cron表达式注册数据重载任务
func (s *Scheduler) AddReloadTask(spec string, reload func()) error {
	_, err := s.cron.AddFunc(spec, func() {
		log.Println("定时重新加载数据...")
		reload()
	})
	if err != nil {
		return fmt.Errorf("注册重载任务失败: %w", err)
	}
	return nil
}

// Start 启动调度器
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
