// 生成示例Excel数据文件
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

var customerRows = [][]interface{}{
	{"user_id", "user_name", "asset_scale", "trading_frequency", "risk_preference"},
	{"C001", "李小明", 500000, "高频", "稳健型"},
	{"C002", "张三", 1200000, "中频", "积极型"},
	{"C003", "王五", 800000, "低频", "保守型"},
	{"C004", "李华", 2000000, "高频", "积极型"},
	{"C005", "赵六", 350000, "中频", "稳健型"},
	{"C006", "刘七", 1500000, "高频", "积极型"},
	{"C007", "陈八", 950000, "中频", "稳健型"},
	{"C008", "杨九", 600000, "低频", "保守型"},
	{"C009", "黄十", 1800000, "高频", "积极型"},
	{"C010", "周十一", 750000, "中频", "稳健型"},
}

var eventRows = [][]interface{}{
	{"event_time", "event_type", "event_detail", "user_id", "user_name"},
	{"2024-01-15 10:30:00", "登录", "用户登录系统", "C001", "李小明"},
	{"2024-01-16 14:20:00", "交易", "购买理财产品", "C002", "张三"},
	{"2024-01-17 09:15:00", "咨询", "咨询贷款利率", "C003", "王五"},
	{"2024-01-18 16:45:00", "交易", "赎回基金", "C004", "李华"},
	{"2024-01-19 11:30:00", "登录", "用户登录系统", "C005", "赵六"},
	{"2024-01-20 13:20:00", "交易", "购买股票基金", "C006", "刘七"},
	{"2024-01-21 15:10:00", "咨询", "咨询定期存款", "C007", "陈八"},
	{"2024-01-22 10:00:00", "登录", "用户登录系统", "C008", "杨九"},
	{"2024-01-23 14:30:00", "交易", "购买债券", "C009", "黄十"},
	{"2024-01-24 09:45:00", "咨询", "咨询外汇业务", "C010", "周十一"},
}

func main() {
	output := flag.String("o", "data/customers.xlsx", "输出文件路径")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		log.Fatalf("创建数据目录失败: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, "customers", customerRows); err != nil {
		log.Fatalf("写入客户信息表失败: %v", err)
	}
	if err := writeSheet(f, "events", eventRows); err != nil {
		log.Fatalf("写入行为事件表失败: %v", err)
	}

	// 删除excelize默认创建的工作表
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(*output); err != nil {
		log.Fatalf("保存示例数据文件失败: %v", err)
	}

	log.Printf("示例数据文件已创建: %s", *output)
	log.Printf("客户数据: %d 条", len(customerRows)-1)
	log.Printf("行为事件数据: %d 条", len(eventRows)-1)
}

// writeSheet 写入一个工作表，首行为表头
func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
