package region

import (
	"errors"
	"fmt"
	"sort"
)

var ErrNoRecords = errors.New("region: no records")

// Index 行政区划索引, 构建后只读
type Index struct {
	units  map[string]*Unit  // 12位编码 -> 单元
	groups map[string]*Group // 可匹配名称(全称或简称) -> 候选集合
	names  []string          // 排序后的可匹配名称
}

// NewIndex 由字典记录构建索引, 任一记录非法即失败
func NewIndex(records []Record) (*Index, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	idx := &Index{
		units:  make(map[string]*Unit, len(records)),
		groups: make(map[string]*Group, len(records)*2),
	}
	for i, rec := range records {
		u, err := NewUnit(rec.Name, rec.Code)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s,%s): %w", i, rec.Code, rec.Name, err)
		}
		idx.add(u)
	}
	idx.names = make([]string, 0, len(idx.groups))
	for name := range idx.groups {
		idx.names = append(idx.names, name)
	}
	sort.Strings(idx.names)
	return idx, nil
}

// add 登记全称; 全称已存在时追加候选, 否则新建候选集合并登记简称
func (idx *Index) add(u *Unit) {
	idx.units[u.FullCode()] = u
	if g, ok := idx.groups[u.Name]; ok {
		g.add(u)
		return
	}
	g := newGroup(u)
	idx.groups[u.Name] = g
	if alias := Simplify(u.Name); alias != u.Name && alias != "" {
		// 简称冲突时后登记的覆盖先登记的, 如"吉林"最终指向吉林市
		idx.groups[alias] = g
	}
}

// Unit 按编码查找, 编码不足12位时补0
func (idx *Index) Unit(code string) *Unit {
	return idx.units[PadCode(code)]
}

// Name 按编码前缀查找名称
func (idx *Index) Name(prefix string) string {
	if u := idx.Unit(prefix); u != nil {
		return u.Name
	}
	return ""
}

// Group 按可匹配名称查找候选集合
func (idx *Index) Group(name string) *Group { return idx.groups[name] }

// Names 所有可匹配名称 (升序)
func (idx *Index) Names() []string { return idx.names }

// Len 单元数量
func (idx *Index) Len() int { return len(idx.units) }
