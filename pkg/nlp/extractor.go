package nlp

import (
	"log"
	"time"

	"CustomerQuery/pkg/config"
	"CustomerQuery/pkg/llm"
	"CustomerQuery/pkg/model"
)

// Extractor 查询参数提取器，将自然语言查询转换为结构化查询参数
// 提取过程不对外抛出错误，内部失败时返回空的（或部分填充的）参数
type Extractor interface {
	Extract(query string) model.QueryParams
}

// NewExtractor 根据配置选择提取策略
// 配置了API凭证时使用大模型解析（失败回退到规则解析），否则使用规则解析
func NewExtractor(cfg *config.Config) Extractor {
	if cfg.LLM.APIKey == "" {
		log.Println("警告: DASHSCOPE_API_KEY未设置，将使用简化的查询解析")
		return NewRuleExtractor()
	}

	client := llm.NewClient(cfg.LLM.APIURL, cfg.LLM.APIKey, cfg.LLM.Model, time.Duration(cfg.LLM.Timeout))
	return NewModelExtractor(client)
}
