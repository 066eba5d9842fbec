package nlp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CustomerQuery/pkg/llm"
)

func TestParseParamsPlainJSON(t *testing.T) {
	params := parseParams(`{"name_contains": "李"}`)
	require.NotNil(t, params.NameContains)
	assert.Equal(t, "李", *params.NameContains)
}

func TestParseParamsWithSurroundingText(t *testing.T) {
	params := parseParams("解析结果如下：\n```json\n{\"risk_preference\": \"稳健型\"}\n```\n以上。")
	require.NotNil(t, params.RiskPreference)
	assert.Equal(t, "稳健型", *params.RiskPreference)
}

func TestParseParamsNestedBraces(t *testing.T) {
	// 一层嵌套的JSON对象也能被整体截取
	params := parseParams(`说明 {"name_contains": "张", "extra": {"ignored": 1}} 结束`)
	require.NotNil(t, params.NameContains)
	assert.Equal(t, "张", *params.NameContains)
}

func TestParseParamsNumbers(t *testing.T) {
	params := parseParams(`{"asset_scale_min": 1000000, "asset_scale_max": 5000000}`)
	require.NotNil(t, params.AssetScaleMin)
	require.NotNil(t, params.AssetScaleMax)
	assert.Equal(t, float64(1000000), *params.AssetScaleMin)
	assert.Equal(t, float64(5000000), *params.AssetScaleMax)
}

func TestParseParamsMalformed(t *testing.T) {
	assert.True(t, parseParams("").IsEmpty())
	assert.True(t, parseParams("{{{").IsEmpty())
	assert.True(t, parseParams("没有任何JSON").IsEmpty())
	assert.True(t, parseParams(`{"name_contains": }`).IsEmpty())
}

// chatHandler 构造一个返回固定内容的聊天接口
func chatHandler(t *testing.T, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req llm.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 0.1, req.Temperature, 1e-9)

		resp := map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]string{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func TestModelExtractorSuccess(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, `{"risk_preference": "稳健型"}`))
	defer server.Close()

	e := NewModelExtractor(llm.NewClient(server.URL, "test-key", "qwen-turbo", time.Second))
	params := e.Extract("稳健型客户有哪些")

	require.NotNil(t, params.RiskPreference)
	assert.Equal(t, "稳健型", *params.RiskPreference)
}

// API失败时回退到规则解析，而不是让请求失败
func TestModelExtractorFallbackOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	e := NewModelExtractor(llm.NewClient(server.URL, "test-key", "qwen-turbo", time.Second))
	params := e.Extract("姓李的客户有谁")

	require.NotNil(t, params.NameContains)
	assert.Equal(t, "李", *params.NameContains)
}

// 超时等同于API失败，同样回退到规则解析
func TestModelExtractorFallbackOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	e := NewModelExtractor(llm.NewClient(server.URL, "test-key", "qwen-turbo", 50*time.Millisecond))
	params := e.Extract("姓李的客户有谁")

	require.NotNil(t, params.NameContains)
	assert.Equal(t, "李", *params.NameContains)
}

// 模型返回无法解析的内容时得到空参数，下游过滤退化为返回全部
func TestModelExtractorMalformedResponse(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, "抱歉，我无法理解这个查询"))
	defer server.Close()

	e := NewModelExtractor(llm.NewClient(server.URL, "test-key", "qwen-turbo", time.Second))
	params := e.Extract("随便查点什么")

	assert.True(t, params.IsEmpty())
}
