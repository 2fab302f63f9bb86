package participle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/cpca/pkg/region"
)

func TestIsSpecialChar(t *testing.T) {
	assert.True(t, IsSpecialChar("，"))
	assert.True(t, IsSpecialChar(" "))
	assert.True(t, IsSpecialChar("#"))
	assert.False(t, IsSpecialChar(""))
	assert.False(t, IsSpecialChar("拱墅区"))
	assert.False(t, IsSpecialChar("3号"))
}

func TestCut(t *testing.T) {
	idx, err := region.NewIndex([]region.Record{
		{Code: "330000", Name: "浙江省"},
		{Code: "330100", Name: "杭州市"},
		{Code: "330105", Name: "拱墅区"},
	})
	require.NoError(t, err)

	c, err := New(idx)
	require.NoError(t, err)
	assert.True(t, c.Contains("拱墅区"))
	assert.True(t, c.Contains("杭州"))
	assert.False(t, c.Contains("祥园路"))

	words := c.Cut("浙江省 杭州市，拱墅区祥园路300号")
	require.NotEmpty(t, words)
	assert.Equal(t, "浙江省杭州市拱墅区祥园路300号", strings.Join(words, ""))
	for _, w := range words {
		assert.False(t, IsSpecialChar(w), w)
	}

	require.NoError(t, c.AddWord("祥园路", 1000, "ns"))
	assert.True(t, c.Contains("祥园路"))
	assert.Error(t, c.AddWord("", 1, "n"))
}
