package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miajio/cpca/pkg/cpca"
)

// transformRequest POST /v1/transform
type transformRequest struct {
	Location  string            `json:"location"`
	Overrides map[string]string `json:"overrides"`
	Strict    *bool             `json:"strict"` // 为空时按是否指定overrides决定
}

type cutRequest struct {
	Text string `json:"text"`
}

type cutResponse struct {
	Words []string `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) postTransform(c *gin.Context) {
	var req transformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	opts := []cpca.TransformOption{cpca.WithOverrides(req.Overrides)}
	if req.Strict != nil {
		opts = append(opts, cpca.WithStrict(*req.Strict))
	}
	c.JSON(http.StatusOK, s.transform(req.Location, opts...))
}

func (s *Server) getTransform(c *gin.Context) {
	c.JSON(http.StatusOK, s.transform(c.Query("location")))
}

func (s *Server) transform(location string, opts ...cpca.TransformOption) cpca.Segmentation {
	start := time.Now()
	seg := s.extractor.Transform(location, opts...)
	s.metrics.ObserveTransform(location, seg, time.Since(start))
	return seg
}

func (s *Server) postCut(c *gin.Context) {
	var req cutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, cutResponse{Words: s.cutter.Cut(req.Text)})
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "units": s.extractor.Index().Len()})
}
