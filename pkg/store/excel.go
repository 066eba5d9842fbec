package store

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"CustomerQuery/pkg/model"
)

// 客户表列名映射，支持中英文表头
var customerColumnAliases = map[string]string{
	"用户ID": "user_id",
	"用户名":  "user_name",
	"用户名称": "user_name",
	"资产规模": "asset_scale",
	"交易频率": "trading_frequency",
	"风险偏好": "risk_preference",
}

// 事件表列名映射
var eventColumnAliases = map[string]string{
	"事件时间": "event_time",
	"事件类型": "event_type",
	"事件详情": "event_detail",
	"用户ID": "user_id",
	"用户名":  "user_name",
	"用户名称": "user_name",
}

// LoadExcel 从Excel文件加载数据并替换当前快照
// 文件缺失或损坏时退化为空数据集，不中断服务
func (s *Store) LoadExcel(path string) {
	customers, events, err := readWorkbook(path)
	if err != nil {
		log.Printf("警告: 加载数据文件 %s 失败: %v，使用空数据", path, err)
		s.Swap(nil, nil)
		return
	}

	s.Swap(customers, events)
	log.Printf("已加载客户数据: %d 条, 行为事件: %d 条", len(customers), len(events))
}

// readWorkbook 读取两个工作表：客户信息表和行为事件表
func readWorkbook(path string) ([]model.CustomerRecord, []model.EventRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("打开Excel文件失败: %w", err)
	}
	defer f.Close()

	// 客户信息表：customers -> 客户信息 -> 第一张表
	customerSheet := pickSheet(f, "customers", "客户信息")
	if customerSheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("工作簿中没有任何工作表")
		}
		customerSheet = sheets[0]
	}

	customers, err := readCustomerSheet(f, customerSheet)
	if err != nil {
		return nil, nil, err
	}

	// 行为事件表（如果存在）：events -> 行为事件
	var events []model.EventRecord
	if eventSheet := pickSheet(f, "events", "行为事件"); eventSheet != "" {
		events, err = readEventSheet(f, eventSheet)
		if err != nil {
			return nil, nil, err
		}
	}

	return customers, events, nil
}

// pickSheet 按候选名称顺序查找工作表，均不存在时返回空串
func pickSheet(f *excelize.File, names ...string) string {
	for _, name := range names {
		if idx, _ := f.GetSheetIndex(name); idx != -1 {
			return name
		}
	}
	return ""
}

// normalizeColumn 将列名标准化为内部字段名，未识别的列名原样返回
func normalizeColumn(aliases map[string]string, name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// headerIndex 构建标准化列名到列下标的映射
func headerIndex(aliases map[string]string, header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeColumn(aliases, name)] = i
	}
	return index
}

// cell 安全取出某行某列的值，越界时返回空串
func cell(row []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func readCustomerSheet(f *excelize.File, sheet string) ([]model.CustomerRecord, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheet, err)
	}
	if len(rows) == 0 {
		return make([]model.CustomerRecord, 0), nil
	}

	index := headerIndex(customerColumnAliases, rows[0])
	customers := make([]model.CustomerRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := model.CustomerRecord{
			UserID:           cell(row, index, "user_id"),
			UserName:         cell(row, index, "user_name"),
			TradingFrequency: cell(row, index, "trading_frequency"),
			RiskPreference:   cell(row, index, "risk_preference"),
		}

		// 资产规模缺失或非数字时保持为空值
		if raw := cell(row, index, "asset_scale"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				record.AssetScale = &v
			}
		}

		customers = append(customers, record)
	}

	return customers, nil
}

func readEventSheet(f *excelize.File, sheet string) ([]model.EventRecord, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheet, err)
	}
	if len(rows) == 0 {
		return make([]model.EventRecord, 0), nil
	}

	index := headerIndex(eventColumnAliases, rows[0])
	events := make([]model.EventRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		events = append(events, model.EventRecord{
			EventTime:   cell(row, index, "event_time"),
			EventType:   cell(row, index, "event_type"),
			EventDetail: cell(row, index, "event_detail"),
			UserID:      cell(row, index, "user_id"),
			UserName:    cell(row, index, "user_name"),
		})
	}

	return events, nil
}
