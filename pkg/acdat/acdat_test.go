package acdat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(a *Automaton, ms []Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, a.Key(m.Key))
	}
	return out
}

func TestScanOverlapping(t *testing.T) {
	a, err := Build([]string{"杭州", "杭州市", "浙江", "浙江省", "拱墅区", "州市"})
	require.NoError(t, err)
	assert.Equal(t, 6, a.Len())

	text := []rune("浙江省杭州市拱墅区祥园路")
	ms := a.Scan(text)
	assert.Equal(t, []string{"浙江", "浙江省", "杭州", "杭州市", "州市", "拱墅区"}, keysOf(a, ms))

	assert.Equal(t, Match{Begin: 0, End: 2, Key: 2}, ms[0])
	assert.Equal(t, Match{Begin: 0, End: 3, Key: 3}, ms[1])
	assert.Equal(t, Match{Begin: 3, End: 6, Key: 1}, ms[3])
	assert.Equal(t, Match{Begin: 6, End: 9, Key: 4}, ms[5])
	for _, m := range ms {
		assert.Equal(t, a.Key(m.Key), string(text[m.Begin:m.End]))
	}
}

func TestScanFailureLinks(t *testing.T) {
	// "he" "she" "his" "hers" 经典用例
	a, err := Build([]string{"he", "she", "his", "hers"})
	require.NoError(t, err)

	ms := a.Scan([]rune("ushers"))
	assert.Equal(t, []string{"she", "he", "hers"}, keysOf(a, ms))
	assert.Equal(t, 1, ms[0].Begin)
	assert.Equal(t, 2, ms[1].Begin)
	assert.Equal(t, 2, ms[2].Begin)
	assert.Equal(t, 6, ms[2].End)
}

func TestScanRepeated(t *testing.T) {
	a, err := Build([]string{"朝阳区"})
	require.NoError(t, err)

	ms := a.Scan([]rune("朝阳区朝阳区汉庭"))
	require.Len(t, ms, 2)
	assert.Equal(t, 0, ms[0].Begin)
	assert.Equal(t, 3, ms[1].Begin)
	assert.Empty(t, a.Scan([]rune("朝阳路")))
	assert.Empty(t, a.Scan(nil))
}

func TestBuildErrors(t *testing.T) {
	_, err := Build([]string{"杭州", ""})
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = Build([]string{"杭州", "杭州"})
	assert.Error(t, err)
}

func TestScanConcurrent(t *testing.T) {
	a, err := Build([]string{"上海", "上海市", "徐汇区"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ms := a.Scan([]rune("上海市上海市徐汇区虹漕路"))
				if !assert.Len(t, ms, 5) {
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestBuildTables(t *testing.T) {
	var keys []string
	for _, p := range []string{"浙江", "杭州", "拱墅", "黑龙江", "五大连池"} {
		keys = append(keys, p, p+"省", p+"市", p+"区")
	}
	a, err := Build(keys)
	require.NoError(t, err)
	require.Len(t, a.outputs, len(a.fail))
	for node, out := range a.outputs {
		assert.Less(t, a.fail[node], len(a.fail))
		for _, k := range out {
			assert.Less(t, k, a.Len())
		}
	}

	ms := a.Scan([]rune("黑龙江省五大连池市\xff拱墅区"))
	assert.Equal(t, []string{"黑龙江", "黑龙江省", "五大连池", "五大连池市", "拱墅", "拱墅区"}, keysOf(a, ms))
	assert.Equal(t, Match{Begin: 10, End: 13, Key: 11}, ms[5])
}
