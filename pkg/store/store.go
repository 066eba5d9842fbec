package store

import (
	"strings"
	"sync"

	"CustomerQuery/pkg/model"
)

// Store 内存客户数据仓库
// 启动时一次性加载，之后只读；定时重载通过整体快照替换完成，
// 读取方拿到的永远是一份完整的快照
type Store struct {
	mutex     sync.RWMutex
	customers []model.CustomerRecord
	events    []model.EventRecord
}

// NewStore 创建空的数据仓库
func NewStore() *Store {
	return &Store{
		customers: make([]model.CustomerRecord, 0),
		events:    make([]model.EventRecord, 0),
	}
}

// Swap 原子替换整个数据快照
func (s *Store) Swap(customers []model.CustomerRecord, events []model.EventRecord) {
	if customers == nil {
		customers = make([]model.CustomerRecord, 0)
	}
	if events == nil {
		events = make([]model.EventRecord, 0)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.customers = customers
	s.events = events
}

// GetAll 按加载顺序返回所有客户
func (s *Store) GetAll() []model.CustomerRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.customers
}

// GetByIDOrName 根据ID或名称查询单个客户
// 提供了ID时只按ID查询，即使未命中也不再按名称查询；
// 未提供ID时才按名称查询，均取第一个命中的记录
func (s *Store) GetByIDOrName(customerID, customerName string) (model.CustomerRecord, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if customerID != "" {
		for _, c := range s.customers {
			if c.UserID == customerID {
				return c, true
			}
		}
		return model.CustomerRecord{}, false
	}

	if customerName != "" {
		for _, c := range s.customers {
			if c.UserName == customerName {
				return c, true
			}
		}
	}

	return model.CustomerRecord{}, false
}

// GetManyByIDsOrNames 批量查询客户，先按ID再按名称，结果按user_id去重
// ID命中的记录在前（按输入顺序），名称命中且尚未出现的记录在后
func (s *Store) GetManyByIDsOrNames(customerIDs, customerNames []string) []model.CustomerRecord {
	results := make([]model.CustomerRecord, 0)

	for _, id := range customerIDs {
		if c, ok := s.GetByIDOrName(id, ""); ok {
			results = append(results, c)
		}
	}

	for _, name := range customerNames {
		c, ok := s.GetByIDOrName("", name)
		if !ok {
			continue
		}

		// 避免重复添加
		duplicate := false
		for _, existing := range results {
			if existing.UserID == c.UserID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			results = append(results, c)
		}
	}

	return results
}

// Filter 按查询参数过滤客户，所有条件为逻辑与
// 名称为大小写不敏感的子串匹配，其余字符串条件为精确匹配；
// 缺失字段不满足任何条件
func (s *Store) Filter(params model.QueryParams) []model.CustomerRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	results := make([]model.CustomerRecord, 0)

	for _, c := range s.customers {
		if !matches(c, params) {
			continue
		}
		results = append(results, c)
	}

	return results
}

// matches 判断单条记录是否满足全部查询条件
func matches(c model.CustomerRecord, params model.QueryParams) bool {
	// 名称包含查询（模糊匹配）
	if params.NameContains != nil && *params.NameContains != "" {
		if c.UserName == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(c.UserName), strings.ToLower(*params.NameContains)) {
			return false
		}
	}

	// 风险偏好查询
	if params.RiskPreference != nil && *params.RiskPreference != "" {
		if c.RiskPreference != *params.RiskPreference {
			return false
		}
	}

	// 资产规模范围查询
	if params.AssetScaleMin != nil {
		if c.AssetScale == nil || *c.AssetScale < *params.AssetScaleMin {
			return false
		}
	}
	if params.AssetScaleMax != nil {
		if c.AssetScale == nil || *c.AssetScale > *params.AssetScaleMax {
			return false
		}
	}

	// 交易频率查询
	if params.TradingFrequency != nil && *params.TradingFrequency != "" {
		if c.TradingFrequency != *params.TradingFrequency {
			return false
		}
	}

	return true
}

// Page 分页返回客户列表，page从1开始计数
func (s *Store) Page(page, pageSize int) ([]model.CustomerRecord, int) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := len(s.customers)

	start := (page - 1) * pageSize
	if start < 0 || start >= total {
		return make([]model.CustomerRecord, 0), total
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	results := make([]model.CustomerRecord, end-start)
	copy(results, s.customers[start:end])
	return results, total
}

// GetEventsByUser 返回某客户的全部行为事件
func (s *Store) GetEventsByUser(userID string) []model.EventRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	results := make([]model.EventRecord, 0)
	for _, e := range s.events {
		if e.UserID == userID {
			results = append(results, e)
		}
	}
	return results
}
