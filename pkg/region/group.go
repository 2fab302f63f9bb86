package region

// Group 同名候选集合, 全称与简称共享同一个Group
// Units 按级别升序 (省 -> 市 -> 县)
type Group struct {
	Units []*Unit
}

func newGroup(u *Unit) *Group {
	return &Group{Units: []*Unit{u}}
}

// add 追加候选; 末尾候选级别更低时插到末尾之前, 与加载顺序一起保证结果确定
func (g *Group) add(u *Unit) {
	n := len(g.Units)
	if n == 0 || g.Units[n-1].Rank <= u.Rank {
		g.Units = append(g.Units, u)
		return
	}
	g.Units = append(g.Units, nil)
	g.Units[n] = g.Units[n-1]
	g.Units[n-1] = u
}

// Has 是否包含该级别的候选
func (g *Group) Has(r Rank) bool {
	for _, u := range g.Units {
		if u.Rank == r {
			return true
		}
	}
	return false
}

// First 级别最低 (最靠前) 的候选
func (g *Group) First() *Unit { return g.Units[0] }

// Distinct 候选涉及的不同级别数
func (g *Group) Distinct() int {
	var seen [County + 1]bool
	n := 0
	for _, u := range g.Units {
		if !seen[u.Rank] {
			seen[u.Rank] = true
			n++
		}
	}
	return n
}

// ByCode 按6位编码查找候选
func (g *Group) ByCode(code string) *Unit {
	for _, u := range g.Units {
		if u.Code == code {
			return u
		}
	}
	return nil
}

// Under 第一个隶属于parent的候选
func (g *Group) Under(parent *Unit) *Unit {
	for _, u := range g.Units {
		if u.BelongTo(parent) {
			return u
		}
	}
	return nil
}
