package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/miajio/cpca/pkg/badger"
	"github.com/miajio/cpca/pkg/cpca"
	"github.com/miajio/cpca/pkg/dict"
	"github.com/miajio/cpca/pkg/region"
)

// loadRecords 配置了store目录时从badger读取, 否则读字典文件
func (a *app) loadRecords() ([]region.Record, error) {
	if a.conf.Store.Dir != "" {
		s, err := a.openStore()
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.Records()
	}
	records, err := dict.LoadFile(a.conf.Dict.Path, dict.WithEncoding(a.conf.Dict.Encoding))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("dictionary file read",
		zap.String("path", a.conf.Dict.Path),
		zap.Int("records", len(records)))
	return records, nil
}

func (a *app) openStore() (*badger.Store, error) {
	s, err := badger.Open(a.conf.Store.Dir, badger.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", a.conf.Store.Dir, err)
	}
	return s, nil
}

func (a *app) newExtractor() (*cpca.Extractor, error) {
	records, err := a.loadRecords()
	if err != nil {
		return nil, err
	}
	return cpca.New(records, cpca.WithLogger(a.logger))
}
