// pkg/model/customer.go
package model

// CustomerRecord 客户信息记录
type CustomerRecord struct {
	UserID           string   `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName         string   `gorm:"column:user_name" json:"user_name"`
	AssetScale       *float64 `gorm:"column:asset_scale" json:"asset_scale"`
	TradingFrequency string   `gorm:"column:trading_frequency" json:"trading_frequency"`
	RiskPreference   string   `gorm:"column:risk_preference" json:"risk_preference"`
}

// TableName 指定客户表名
func (CustomerRecord) TableName() string {
	return "customers"
}

// EventRecord 客户行为事件记录，通过user_id关联客户
type EventRecord struct {
	EventTime   string `gorm:"column:event_time" json:"event_time"`
	EventType   string `gorm:"column:event_type" json:"event_type"`
	EventDetail string `gorm:"column:event_detail" json:"event_detail"`
	UserID      string `gorm:"column:user_id;index" json:"user_id"`
	UserName    string `gorm:"column:user_name" json:"user_name"`
}

// TableName 指定事件表名
func (EventRecord) TableName() string {
	return "events"
}
