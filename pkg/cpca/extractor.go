// Package cpca 从中文地址中提取省、市、区县并拆分出剩余地址
package cpca

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/miajio/cpca/pkg/acdat"
	"github.com/miajio/cpca/pkg/region"
)

// Extractor 省市区提取器, 构建后只读, 可并发调用
type Extractor struct {
	index   *region.Index
	matcher *acdat.Automaton
	groups  []*region.Group // 模式串下标 -> 候选集合
	logger  *zap.Logger
}

// Option 构建选项
type Option func(*Extractor)

// WithLogger 设置日志
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New 由字典记录构建提取器, 字典有误时返回错误
func New(records []region.Record, opts ...Option) (*Extractor, error) {
	e := &Extractor{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	idx, err := region.NewIndex(records)
	if err != nil {
		return nil, fmt.Errorf("build region index: %w", err)
	}
	names := idx.Names()
	matcher, err := acdat.Build(names)
	if err != nil {
		return nil, fmt.Errorf("build matcher: %w", err)
	}
	e.index = idx
	e.matcher = matcher
	e.groups = make([]*region.Group, len(names))
	for i, name := range names {
		e.groups[i] = idx.Group(name)
	}

	e.logger.Info("cpca dictionary loaded",
		zap.Int("records", len(records)),
		zap.Int("units", idx.Len()),
		zap.Int("names", len(names)))
	return e, nil
}

// Index 行政区划索引
func (e *Extractor) Index() *region.Index { return e.index }

// transformConfig 单次调用参数
type transformConfig struct {
	overrides map[string]string
	strict    *bool
}

// TransformOption 调用选项
type TransformOption func(*transformConfig)

// WithOverrides 只有区县信息且存在同名区县时, 指定具体编码, 如 {"朝阳区": "110105"}
func WithOverrides(overrides map[string]string) TransformOption {
	return func(c *transformConfig) { c.overrides = overrides }
}

// WithStrict 严格匹配, 存在同名区县时当作未匹配处理
func WithStrict(strict bool) TransformOption {
	return func(c *transformConfig) { c.strict = &strict }
}

// TransformStrict 指定是否严格匹配
func (e *Extractor) TransformStrict(location string, strict bool) Segmentation {
	return e.Transform(location, WithStrict(strict))
}

// TransformWithOverrides 指定同名区县的编码
func (e *Extractor) TransformWithOverrides(location string, overrides map[string]string) Segmentation {
	return e.Transform(location, WithOverrides(overrides))
}

// Transform 提取省市区
// 未指定严格匹配时: 未提供overrides则严格匹配, 否则不严格匹配
func (e *Extractor) Transform(location string, opts ...TransformOption) Segmentation {
	var cfg transformConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	strict := len(cfg.overrides) == 0
	if cfg.strict != nil {
		strict = *cfg.strict
	}
	if strings.TrimSpace(location) == "" {
		return Segmentation{}
	}
	return e.transform(newInput(location), cfg.overrides, strict)
}

func (e *Extractor) transform(in input, overrides map[string]string, strict bool) Segmentation {
	text := in.text
	var st state
	for _, h := range e.hits(text) {
		st.observe(h)

		override, hasOverride := overrides[h.name]
		u := e.resolve(h, st.parent, override, hasOverride, strict)
		if u == nil && !st.fullMatched() {
			u = e.resolve(h, nil, override, hasOverride, strict)
		}

		switch {
		case u != nil:
			st.accept(u, h)
			if u.Rank == region.County {
				// 匹配到区县就停止
				return e.county(in, &st, u, h)
			}
			st.parent = u
		case st.fullMatched():
		case h.group.First().Rank == region.County && st.cityMatched &&
			st.parent != nil && strings.HasPrefix(h.name, region.Simplify(st.parent.Name)):
			// 市、县同名, 当作未匹配处理
			st.code = ""
		case st.cityMatched && isArea(st.citySpan.End, text):
			// 如杭州区
			st.code = ""
		case st.provMatched && isArea(st.provSpan.End, text):
			st.code = ""
		}
	}
	return e.provinceOrCity(in, &st)
}

// county 命中区县后收尾
func (e *Extractor) county(in input, st *state, u *region.Unit, h hit) Segmentation {
	if !st.anyFullMatched() && isUnit(h.end, in.text) {
		return none(in.raw)
	}
	keepSpans := st.parent == nil || u.BelongTo(st.parent)
	if h.begin > 0 && !st.provMatched && !st.cityMatched {
		// 区县前面有内容, 但不是省和市
		return none(in.raw)
	}
	seg := e.build(u.Code, in.from(h.end))
	if keepSpans {
		seg.ProvinceSpan = st.provSpan
		seg.CitySpan = st.citySpan
	}
	seg.AreaSpan = h.span()
	return seg
}

// provinceOrCity 未命中区县时收尾
func (e *Extractor) provinceOrCity(in input, st *state) Segmentation {
	if st.code == "" {
		return none(in.raw)
	}
	if st.fullMatched() {
		return e.withSpans(st, in.from(st.end))
	}
	if st.provMatched && st.cityMatched {
		prov, city := st.provSpan, st.citySpan
		if city.Begin == prov.End ||
			(prov.End < city.Begin && strings.TrimSpace(in.between(prov.End, city.Begin)) == "") {
			return e.withSpans(st, in.from(st.end))
		}
		return none(in.raw)
	}
	lead := st.leading()
	if lead == nil {
		return none(in.raw)
	}
	if isUnit(lead.End, in.text) {
		// 如镇、村、大厦、中学等单位
		return none(in.raw)
	}
	if lead.Begin > 0 {
		// 未以全称命中的省或市前面还有内容, 当作普通地址
		return none(in.raw)
	}
	return e.withSpans(st, in.from(st.end))
}

func (e *Extractor) withSpans(st *state, address string) Segmentation {
	seg := e.build(st.code, address)
	seg.ProvinceSpan = st.provSpan
	seg.CitySpan = st.citySpan
	return seg
}

// resolve 为命中确定具体的行政区划单元
// 优先级: 上级区划 -> 指定编码 -> 严格/非严格默认规则
func (e *Extractor) resolve(h hit, parent *region.Unit, override string, hasOverride, strict bool) *region.Unit {
	g := h.group
	if parent != nil {
		if u := g.Under(parent); u != nil {
			return u
		}
		// 存在市、县简称相同的情况, 会先匹配到市, 实际应该匹配到县
		if parent.Rank == region.City && strings.HasPrefix(h.name, region.Simplify(parent.Name)) {
			return e.resolve(h, nil, override, hasOverride, strict)
		}
		return nil
	}
	if hasOverride {
		if len(override) > region.CountyCodeLen {
			override = override[:region.CountyCodeLen]
		}
		return g.ByCode(override)
	}
	if !strict || len(g.Units) == 1 || g.Distinct() > 1 {
		return g.First()
	}
	return nil
}

// build 按编码补全省、市、区名称
func (e *Extractor) build(code, address string) Segmentation {
	seg := Segmentation{Code: code, Address: address}
	seg.ProvinceName = e.index.Name(code[:region.ProvinceCodeLen])
	switch region.RankOf(code) {
	case region.City:
		seg.CityName = e.index.Name(code[:region.CityCodeLen])
	case region.County:
		seg.CityName = e.index.Name(code[:region.CityCodeLen])
		seg.AreaName = e.index.Name(code)
	}
	return seg
}

// input 单次调用的输入, 位置均为rune下标, 截取时按字节偏移切原串
type input struct {
	raw  string
	text []rune
	off  []int // rune下标 -> 字节偏移, 末尾多一项为len(raw)
}

func newInput(location string) input {
	in := input{raw: location, text: make([]rune, 0, len(location)), off: make([]int, 0, len(location)+1)}
	for i, r := range location {
		in.text = append(in.text, r)
		in.off = append(in.off, i)
	}
	in.off = append(in.off, len(location))
	return in
}

// from end之后的原文, 已到末尾时为空
func (in input) from(end int) string {
	if end >= len(in.text) {
		return ""
	}
	return in.raw[in.off[end]:]
}

// between [begin, end) 之间的原文
func (in input) between(begin, end int) string {
	return in.raw[in.off[begin]:in.off[end]]
}
