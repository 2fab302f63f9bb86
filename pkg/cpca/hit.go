package cpca

import (
	"github.com/miajio/cpca/pkg/acdat"
	"github.com/miajio/cpca/pkg/region"
)

// hit 单次调用内的命中记录, full 只属于本次调用
type hit struct {
	begin int
	end   int
	name  string        // 命中的可匹配名称
	group *region.Group // 候选集合, 与字典共享, 只读
	full  bool          // 是否与后一个更长的同组命中合并成全称
}

func (h hit) span() *Span { return &Span{Begin: h.begin, End: h.end} }

// hits 扫描文本并去重
//
// 省、市、区可能匹配到两次, 如 杭州市xxx 先后命中 杭州、杭州市, 只保留 杭州市 并标记为全称;
// 同一候选集合只保留第一次出现的命中.
func (e *Extractor) hits(text []rune) []hit {
	raw := e.matcher.Scan(text)
	out := make([]hit, 0, len(raw))
	for i, m := range raw {
		g := e.groups[m.Key]
		if retained(out, m, g) {
			continue
		}
		if i+1 < len(raw) && e.groups[raw[i+1].Key] == g {
			out = append(out, e.newHit(raw[i+1], true))
			continue
		}
		out = append(out, e.newHit(m, false))
	}
	return out
}

func (e *Extractor) newHit(m acdat.Match, full bool) hit {
	return hit{
		begin: m.Begin,
		end:   m.End,
		name:  e.matcher.Key(m.Key),
		group: e.groups[m.Key],
		full:  full,
	}
}

// retained 相同位置或相同候选集合的命中已保留
func retained(out []hit, m acdat.Match, g *region.Group) bool {
	for _, h := range out {
		if h.begin == m.Begin && h.end == m.End {
			return true
		}
		if h.group == g {
			return true
		}
	}
	return false
}
