package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/cpca/pkg/cpca"
	"github.com/miajio/cpca/pkg/participle"
	"github.com/miajio/cpca/pkg/region"
)

var records = []region.Record{
	{Code: "220000000000", Name: "吉林省"},
	{Code: "220100000000", Name: "长春市"},
	{Code: "220104000000", Name: "朝阳区"},
	{Code: "110000000000", Name: "北京市"},
	{Code: "110100000000", Name: "北京市"},
	{Code: "110105000000", Name: "朝阳区"},
	{Code: "330000000000", Name: "浙江省"},
	{Code: "330100000000", Name: "杭州市"},
	{Code: "330105000000", Name: "拱墅区"},
}

func setupTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e, err := cpca.New(records)
	require.NoError(t, err)
	return New(e, opts...)
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) cpca.Segmentation {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var seg cpca.Segmentation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seg))
	return seg
}

func TestPostTransform(t *testing.T) {
	s := setupTestServer(t)

	seg := decode(t, do(s, http.MethodPost, "/v1/transform", `{"location":"浙江省杭州市拱墅区祥园路300号"}`))
	assert.Equal(t, "330105", seg.Code)
	assert.Equal(t, "祥园路300号", seg.Address)
	assert.Equal(t, &cpca.Span{Begin: 6, End: 9}, seg.AreaSpan)

	// 同名区县默认严格匹配
	seg = decode(t, do(s, http.MethodPost, "/v1/transform", `{"location":"朝阳区汉庭酒店"}`))
	assert.True(t, seg.NoPCA())

	seg = decode(t, do(s, http.MethodPost, "/v1/transform",
		`{"location":"朝阳区汉庭酒店","overrides":{"朝阳区":"110105"}}`))
	assert.Equal(t, "北京市", seg.ProvinceName)
	assert.Equal(t, "汉庭酒店", seg.Address)

	seg = decode(t, do(s, http.MethodPost, "/v1/transform", `{"location":"朝阳区汉庭酒店","strict":false}`))
	assert.Equal(t, "吉林省", seg.ProvinceName)
}

func TestPostTransformBadRequest(t *testing.T) {
	s := setupTestServer(t)
	w := do(s, http.MethodPost, "/v1/transform", `{"location":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestGetTransform(t *testing.T) {
	s := setupTestServer(t)
	seg := decode(t, do(s, http.MethodGet, "/v1/transform?location="+url.QueryEscape("杭州市第十中学"), ""))
	assert.Equal(t, "杭州市", seg.CityName)
	assert.Equal(t, "第十中学", seg.Address)

	seg = decode(t, do(s, http.MethodGet, "/v1/transform", ""))
	assert.Equal(t, cpca.Segmentation{}, seg)
}

func TestHealthzAndMetrics(t *testing.T) {
	s := setupTestServer(t)
	w := do(s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","units":9}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	do(s, http.MethodGet, "/v1/transform?location="+url.QueryEscape("拱墅区"), "")
	w = do(s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `cpca_transform_total{result="pca"} 1`)
	assert.Contains(t, w.Body.String(), "cpca_dictionary_units 9")
}

func TestCut(t *testing.T) {
	s := setupTestServer(t)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodPost, "/v1/cut", `{"text":"祥园路"}`).Code)

	e, err := cpca.New(records)
	require.NoError(t, err)
	c, err := participle.New(e.Index())
	require.NoError(t, err)
	s = New(e, WithCutter(c))

	w := do(s, http.MethodPost, "/v1/cut", `{"text":"杭州市，拱墅区"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Words []string `json:"words"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "杭州市拱墅区", strings.Join(resp.Words, ""))
}

func TestRun(t *testing.T) {
	s := setupTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
