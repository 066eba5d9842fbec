package nlp

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"CustomerQuery/pkg/llm"
	"CustomerQuery/pkg/model"
)

// 匹配文本中第一个花括号包裹的JSON对象，支持一层嵌套
var jsonObjectPattern = regexp.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)

// ModelExtractor 基于大模型的查询参数提取器
// 调用失败时回退到规则提取器，保证提取永不对外失败
type ModelExtractor struct {
	client   *llm.Client
	fallback *RuleExtractor
}

// NewModelExtractor 创建大模型提取器
func NewModelExtractor(client *llm.Client) *ModelExtractor {
	return &ModelExtractor{
		client:   client,
		fallback: NewRuleExtractor(),
	}
}

// Extract 使用大模型解析自然语言查询
func (e *ModelExtractor) Extract(query string) model.QueryParams {
	prompt := buildPrompt(query)

	// 低采样温度，保证输出接近确定性
	text, err := e.client.Chat([]llm.Message{
		{Role: "user", Content: prompt},
	}, 0.1)
	if err != nil {
		log.Printf("调用大模型解析查询失败: %v，回退到规则解析", err)
		return e.fallback.Extract(query)
	}

	return parseParams(text)
}

// buildPrompt 构建提示词
func buildPrompt(query string) string {
	return fmt.Sprintf(`你是一个银行客户数据查询助手。请将用户的自然语言查询转换为结构化的查询参数。

用户查询: %s

请分析查询意图，并返回JSON格式的查询参数。可能的参数包括：
- name_contains: 客户名称包含的关键词（字符串）
- risk_preference: 风险偏好（可选值：稳健型、积极型、保守型等）
- asset_scale_min: 最小资产规模（数字）
- asset_scale_max: 最大资产规模（数字）
- trading_frequency: 交易频率（字符串）

示例：
查询："姓李的客户有谁" -> {"name_contains": "李"}
查询："稳健型客户有哪些" -> {"risk_preference": "稳健型"}
查询："资产规模大于100万的客户" -> {"asset_scale_min": 1000000}

请只返回JSON对象，不要包含其他说明文字。
`, query)
}

// parseParams 从模型返回的文本中提取查询参数
// 先尝试整体解析，失败后提取第一个JSON对象再解析，仍失败则返回空参数
func parseParams(text string) model.QueryParams {
	var params model.QueryParams
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &params); err == nil {
		return params
	}

	if fragment := jsonObjectPattern.FindString(text); fragment != "" {
		var fromFragment model.QueryParams
		if err := json.Unmarshal([]byte(fragment), &fromFragment); err == nil {
			return fromFragment
		}
	}

	return model.QueryParams{}
}
