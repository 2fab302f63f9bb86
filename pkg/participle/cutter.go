// Package participle 对去掉省市区后的地址分词, 行政区划名称作为地名整体切出
package participle

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"
	"go.uber.org/zap"

	"github.com/miajio/cpca/pkg/region"
)

// Cutter 分词器
type Cutter struct {
	mu        sync.RWMutex
	segmenter gse.Segmenter        // 分词器
	words     map[string]DictEntry // 追加的词条
	logger    *zap.Logger
}

// Option 分词器选项
type Option func(*Cutter)

// WithLogger 设置日志
func WithLogger(l *zap.Logger) Option {
	return func(c *Cutter) {
		if l != nil {
			c.logger = l
		}
	}
}

// New 创建分词器, 加载gse默认词典与idx中全部可匹配名称
func New(idx *region.Index, opts ...Option) (*Cutter, error) {
	c := &Cutter{
		words:  make(map[string]DictEntry),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	seg, err := gse.New()
	if err != nil {
		return nil, fmt.Errorf("init gse segmenter: %w", err)
	}
	c.segmenter = seg

	if idx != nil {
		for _, name := range idx.Names() {
			c.addWord(DictEntry{Content: name, Frequency: PlaceFrequency, Pos: PlacePos})
		}
	}
	c.logger.Info("participle dictionary loaded", zap.Int("words", len(c.words)))
	return c, nil
}

func (c *Cutter) addWord(entry DictEntry) {
	c.words[entry.Content] = entry
	c.segmenter.AddToken(entry.Content, entry.Frequency, entry.Pos)
}

// AddWord 添加一个新词到词典
func (c *Cutter) AddWord(content string, frequency float64, pos string) error {
	if content == "" {
		return fmt.Errorf("participle: empty word")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addWord(DictEntry{Content: content, Frequency: frequency, Pos: pos})
	return nil
}

// Contains 是否为追加的词条
func (c *Cutter) Contains(content string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.words[content]
	return ok
}

// Cut 分词, 去掉标点与空白
func (c *Cutter) Cut(text string) []string {
	c.mu.RLock()
	segments := c.segmenter.Cut(text, true)
	c.mu.RUnlock()

	words := make([]string, 0, len(segments))
	for _, s := range segments {
		if IsSpecialChar(s) {
			continue
		}
		words = append(words, s)
	}
	return words
}
