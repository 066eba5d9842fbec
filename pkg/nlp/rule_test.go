package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNameContains(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("姓李的客户有谁")
	require.NotNil(t, params.NameContains)
	assert.Equal(t, "李", *params.NameContains)
	assert.Nil(t, params.RiskPreference)
	assert.Nil(t, params.AssetScaleMin)
	assert.Nil(t, params.AssetScaleMax)

	params = e.Extract("叫王五的人")
	require.NotNil(t, params.NameContains)
	assert.Equal(t, "王五", *params.NameContains)

	params = e.Extract("名字包含小明的客户")
	require.NotNil(t, params.NameContains)
	assert.Equal(t, "小明", *params.NameContains)
}

func TestExtractRiskPreference(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("稳健型客户有哪些")
	require.NotNil(t, params.RiskPreference)
	assert.Equal(t, "稳健型", *params.RiskPreference)
	assert.Nil(t, params.NameContains)

	params = e.Extract("积极的投资者")
	require.NotNil(t, params.RiskPreference)
	assert.Equal(t, "积极型", *params.RiskPreference)

	params = e.Extract("保守客户")
	require.NotNil(t, params.RiskPreference)
	assert.Equal(t, "保守型", *params.RiskPreference)
}

// 多个风险类别关键词同时出现时按固定优先级取第一个
func TestExtractRiskPreferencePriority(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("稳健或保守的客户")
	require.NotNil(t, params.RiskPreference)
	assert.Equal(t, "稳健型", *params.RiskPreference)

	params = e.Extract("积极还是保守")
	require.NotNil(t, params.RiskPreference)
	assert.Equal(t, "积极型", *params.RiskPreference)
}

func TestExtractAssetScaleMin(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("资产规模大于100万的客户")
	require.NotNil(t, params.AssetScaleMin)
	assert.Equal(t, float64(1000000), *params.AssetScaleMin)
	// 带"大于"时上界正则不会命中
	assert.Nil(t, params.AssetScaleMax)

	params = e.Extract("资产超过2百万的客户")
	require.NotNil(t, params.AssetScaleMin)
	assert.Equal(t, float64(2000000), *params.AssetScaleMin)
}

func TestExtractAssetScaleMax(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("资产规模小于50万的客户")
	require.NotNil(t, params.AssetScaleMax)
	assert.Equal(t, float64(500000), *params.AssetScaleMax)
	assert.Nil(t, params.AssetScaleMin)
}

// 无比较词时两条资产正则会同时命中，这是既有行为，不应被"修复"
func TestExtractAssetScaleDualMatch(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("资产100万的客户")
	require.NotNil(t, params.AssetScaleMin)
	require.NotNil(t, params.AssetScaleMax)
	assert.Equal(t, float64(1000000), *params.AssetScaleMin)
	assert.Equal(t, float64(1000000), *params.AssetScaleMax)
}

func TestExtractAssetScaleNoUnit(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("资产大于500000")
	require.NotNil(t, params.AssetScaleMin)
	assert.Equal(t, float64(500000), *params.AssetScaleMin)
}

func TestExtractCombined(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("姓李的稳健型客户")
	require.NotNil(t, params.NameContains)
	assert.Equal(t, "李", *params.NameContains)
	require.NotNil(t, params.RiskPreference)
	assert.Equal(t, "稳健型", *params.RiskPreference)
}

func TestExtractNoMatch(t *testing.T) {
	e := NewRuleExtractor()

	params := e.Extract("")
	assert.True(t, params.IsEmpty())

	params = e.Extract("今天天气怎么样")
	assert.True(t, params.IsEmpty())
}
