package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/cpca/pkg/dict"
)

const testDict = "../../pkg/cpca/testdata/adcodes.csv"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--dict", testDict}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []map[string]any {
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		var m map[string]any
		if json.Unmarshal([]byte(line), &m) == nil {
			out = append(out, m)
		}
	}
	return out
}

func TestParseOverrides(t *testing.T) {
	m, err := parseOverrides([]string{"朝阳区=110105", " 白云区 = 520113 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"朝阳区": "110105", "白云区": "520113"}, m)

	m, err = parseOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	for _, bad := range []string{"朝阳区", "=110105", "朝阳区="} {
		_, err := parseOverrides([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestTransformArgs(t *testing.T) {
	out, err := run(t, "", "transform", "浙江省杭州市拱墅区祥园路300号", "上海路990号")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	assert.Equal(t, "330105", got[0]["cpcaCode"])
	assert.Equal(t, "祥园路300号", got[0]["address"])
	assert.Nil(t, got[1]["cpcaCode"])
	assert.Equal(t, "上海路990号", got[1]["address"])
}

func TestTransformStdinAndOverrides(t *testing.T) {
	out, err := run(t, "朝阳区汉庭酒店大山子店\n\n徐汇区虹漕路461号\n",
		"transform", "--override", "朝阳区=110105")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	assert.Equal(t, "110105", got[0]["cpcaCode"])
	assert.Equal(t, "310104", got[1]["cpcaCode"])

	out, err = run(t, "", "transform", "--no-strict", "朝阳区汉庭酒店大山子店")
	require.NoError(t, err)
	assert.Equal(t, "220104", lines(out)[0]["cpcaCode"])

	_, err = run(t, "", "transform", "--strict", "--no-strict", "x")
	assert.Error(t, err)
	_, err = run(t, "", "transform", "--override", "bad", "x")
	assert.Error(t, err)
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "db")
	backup := filepath.Join(dir, "dict.backup")

	out, err := run(t, "", "import", "--store", store, "--backup", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 45 records")
	assert.FileExists(t, backup)

	// 从store读取字典
	out, err = run(t, "", "--store", store, "transform", "五大连池市红旗路100号")
	require.NoError(t, err)
	assert.Equal(t, "231182", lines(out)[0]["cpcaCode"])

	out, err = run(t, "", "export", "--store", store)
	require.NoError(t, err)
	records, err := dict.Read(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, records, 45)

	exported := filepath.Join(dir, "adcodes.csv")
	_, err = run(t, "", "export", "--store", store, "--out", exported)
	require.NoError(t, err)
	records, err = dict.LoadFile(exported)
	require.NoError(t, err)
	assert.Len(t, records, 45)

	_, err = run(t, "", "export", "--store", store, "--out", filepath.Join(dir, "missing", "adcodes.csv"))
	assert.Error(t, err)

	_, err = run(t, "", "export")
	assert.Error(t, err)
}
