package cpca

import "github.com/miajio/cpca/pkg/region"

// state 单次调用的匹配状态, 不可跨调用复用
type state struct {
	provMatched bool
	cityMatched bool
	provFull    bool
	cityFull    bool
	areaFull    bool

	provSpan *Span // 第一次命中省的位置
	citySpan *Span // 第一次命中市的位置

	parent *region.Unit // 最近一次确认的省或市
	code   string       // 当前确认的编码
	end    int          // code对应命中的结束位置
}

// observe 按省、市、区顺序记录本次命中涉及的级别, 同一级别只记第一次
func (st *state) observe(h hit) {
	g := h.group
	provTurn := !st.provMatched && g.Has(region.Province)
	if provTurn {
		st.provMatched = true
		st.provSpan = h.span()
	}
	cityTurn := !provTurn && !st.cityMatched && g.Has(region.City)
	if cityTurn {
		st.cityMatched = true
		st.citySpan = h.span()
	}

	provFullTurn := !st.provFull && h.full && g.Has(region.Province)
	if provFullTurn {
		st.provFull = true
	}
	cityFullTurn := !provFullTurn && !st.cityFull && h.full && g.Has(region.City)
	if cityFullTurn {
		st.cityFull = true
	}
	if !st.areaFull && !cityFullTurn && h.full && g.Has(region.County) {
		st.areaFull = true
	}
}

// fullMatched 省或市以全称命中
func (st *state) fullMatched() bool { return st.provFull || st.cityFull }

// anyFullMatched 省、市、区任一以全称命中
func (st *state) anyFullMatched() bool { return st.provFull || st.cityFull || st.areaFull }

// accept 确认编码
func (st *state) accept(u *region.Unit, h hit) {
	st.code = u.Code
	st.end = h.end
}

// leading 只命中省或市之一时, 该命中的位置
func (st *state) leading() *Span {
	if st.provMatched {
		return st.provSpan
	}
	if st.cityMatched {
		return st.citySpan
	}
	return nil
}
