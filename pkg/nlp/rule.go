package nlp

import (
	"regexp"
	"strconv"
	"strings"

	"CustomerQuery/pkg/model"
)

var (
	// 匹配"姓X的"、"叫X的"等名称表达，捕获组取最短匹配
	namePattern = regexp.MustCompile(`(?:姓|名字包含|名称包含|叫|是)(.{1,10}?)(?:的|客户|人)`)

	// 资产规模上下界使用两条独立的正则，引导比较词均为可选，
	// 因此"资产100万"这类无比较词的查询会同时命中两条
	assetMinPattern = regexp.MustCompile(`资产[规模]*(?:大于|超过|高于|不少于)?(\d+)(?:万|百万|千万)?`)
	assetMaxPattern = regexp.MustCompile(`资产[规模]*(?:小于|低于|不超过|少于)?(\d+)(?:万|百万|千万)?`)
)

// RuleExtractor 基于规则匹配的查询参数提取器，不依赖外部服务
type RuleExtractor struct{}

// NewRuleExtractor 创建规则提取器
func NewRuleExtractor() *RuleExtractor {
	return &RuleExtractor{}
}

// Extract 从自然语言查询中提取结构化查询参数
func (e *RuleExtractor) Extract(query string) model.QueryParams {
	var params model.QueryParams

	// 匹配"姓X的"或"名字包含X的"
	if m := namePattern.FindStringSubmatch(query); m != nil {
		name := m[1]
		params.NameContains = &name
	}

	// 匹配风险偏好，按固定优先级取第一个命中的类别
	if strings.Contains(query, "稳健") {
		risk := "稳健型"
		params.RiskPreference = &risk
	} else if strings.Contains(query, "积极") {
		risk := "积极型"
		params.RiskPreference = &risk
	} else if strings.Contains(query, "保守") {
		risk := "保守型"
		params.RiskPreference = &risk
	}

	// 匹配资产规模（单位：万、百万等）
	if m := assetMinPattern.FindStringSubmatch(query); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			scaled := scaleAssetValue(query, v)
			params.AssetScaleMin = &scaled
		}
	}

	if m := assetMaxPattern.FindStringSubmatch(query); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			scaled := scaleAssetValue(query, v)
			params.AssetScaleMax = &scaled
		}
	}

	return params
}

// scaleAssetValue 根据查询中出现的单位词换算资产数值
// 判断的是整条查询而不是匹配片段
func scaleAssetValue(query string, value float64) float64 {
	if strings.Contains(query, "万") && !strings.Contains(query, "百万") {
		return value * 10000
	}
	if strings.Contains(query, "百万") {
		return value * 1000000
	}
	return value
}
