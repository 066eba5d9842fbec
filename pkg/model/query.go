// pkg/model/query.go
package model

// QueryParams 结构化查询参数，由自然语言查询解析得到
// 所有字段均可选，未设置的字段不参与过滤
type QueryParams struct {
	NameContains     *string  `json:"name_contains,omitempty"`
	RiskPreference   *string  `json:"risk_preference,omitempty"`
	AssetScaleMin    *float64 `json:"asset_scale_min,omitempty"`
	AssetScaleMax    *float64 `json:"asset_scale_max,omitempty"`
	TradingFrequency *string  `json:"trading_frequency,omitempty"`
}

// IsEmpty 判断是否没有任何有效的查询条件
func (p QueryParams) IsEmpty() bool {
	return (p.NameContains == nil || *p.NameContains == "") &&
		(p.RiskPreference == nil || *p.RiskPreference == "") &&
		p.AssetScaleMin == nil &&
		p.AssetScaleMax == nil &&
		(p.TradingFrequency == nil || *p.TradingFrequency == "")
}
