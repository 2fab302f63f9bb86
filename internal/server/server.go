// Package server 以HTTP形式提供省市区提取
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/miajio/cpca/internal/metrics"
	"github.com/miajio/cpca/pkg/cpca"
	"github.com/miajio/cpca/pkg/participle"
)

// Server HTTP服务
type Server struct {
	extractor *cpca.Extractor
	cutter    *participle.Cutter // 为nil时不提供分词接口
	registry  *prometheus.Registry
	metrics   *metrics.Metrics
	logger    *zap.Logger
	engine    *gin.Engine
}

// Option 服务选项
type Option func(*Server)

// WithCutter 启用 /v1/cut
func WithCutter(c *participle.Cutter) Option {
	return func(s *Server) { s.cutter = c }
}

// WithLogger 设置日志
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry 指标注册表, 默认新建
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// New 创建服务
func New(e *cpca.Extractor, opts ...Option) *Server {
	s := &Server{
		extractor: e,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = metrics.New(s.registry)
	s.metrics.DictionaryUnits.Set(float64(e.Index().Len()))

	g := gin.New()
	g.Use(gin.Recovery(), requestID(), accessLog(s.logger))
	v1 := g.Group("/v1")
	v1.POST("/transform", s.postTransform)
	v1.GET("/transform", s.getTransform)
	if s.cutter != nil {
		v1.POST("/cut", s.postCut)
	}
	g.GET("/healthz", s.healthz)
	g.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	s.engine = g
	return s
}

// Handler http.Handler
func (s *Server) Handler() http.Handler { return s.engine }

// Run 监听addr直到ctx结束, 结束时优雅关闭
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("cpca server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("cpca server stopped")
	return nil
}
