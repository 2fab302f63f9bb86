// Package acdat 基于双数组前缀树(cedar)的Aho-Corasick多模式匹配自动机
//
// 转移函数由cedar双数组承担, 失败指针与输出表在构建时一次算好,
// 构建完成后自动机只读, 可被任意数量的goroutine并发扫描.
package acdat

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vcaesar/cedar"
)

const root = 0

var ErrEmptyKey = errors.New("acdat: empty key")

// Match 一次命中, Begin/End 为rune下标, 左闭右开
type Match struct {
	Begin int
	End   int
	Key   int // 模式串下标
}

// Len 命中长度
func (m Match) Len() int { return m.End - m.Begin }

// Automaton AC自动机
type Automaton struct {
	trie    *cedar.Cedar
	keys    []string
	lens    []int         // 模式串rune长度
	fail    []int   // 节点 -> 失败节点, 以cedar节点编号为下标
	outputs [][]int // 节点 -> 终止于该节点的全部模式串(含失败链上的)
}

// edge 构建期使用的子节点边
type edge struct {
	r  rune
	to int
}

// Build 由模式串构建自动机, 模式串不可为空且不可重复
func Build(keys []string) (*Automaton, error) {
	a := &Automaton{
		trie: cedar.New(),
		keys: make([]string, len(keys)),
		lens: make([]int, len(keys)),
	}
	copy(a.keys, keys)

	seen := make(map[string]struct{}, len(keys))
	for i, key := range a.keys {
		if key == "" {
			return nil, fmt.Errorf("%w at %d", ErrEmptyKey, i)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("acdat: duplicate key %q", key)
		}
		seen[key] = struct{}{}
		if err := a.trie.Insert([]byte(key), i); err != nil {
			return nil, fmt.Errorf("acdat: insert %q: %w", key, err)
		}
	}

	// 插入过程中双数组会迁移节点, 节点编号须在全部插入后再取
	children := make(map[int][]edge)
	ends := make([]int, len(a.keys))
	maxNode := root
	for i, key := range a.keys {
		node, n := root, 0
		for _, r := range key {
			next, ok := a.step(node, r)
			if !ok {
				return nil, fmt.Errorf("acdat: broken path for %q", key)
			}
			if !hasEdge(children[node], r) {
				children[node] = append(children[node], edge{r: r, to: next})
			}
			node = next
			maxNode = max(maxNode, node)
			n++
		}
		a.lens[i] = n
		ends[i] = node
	}

	a.fail = make([]int, maxNode+1)
	a.outputs = make([][]int, maxNode+1)
	for i, node := range ends {
		a.outputs[node] = append(a.outputs[node], i)
	}

	a.link(children)
	return a, nil
}

// link 广度优先计算失败指针, 并把失败节点的输出合并进来
func (a *Automaton) link(children map[int][]edge) {
	queue := make([]int, 0, len(children))
	for _, e := range children[root] {
		a.fail[e.to] = root
		queue = append(queue, e.to)
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, e := range children[node] {
			f := a.fail[node]
			for {
				if next, ok := a.step(f, e.r); ok {
					a.fail[e.to] = next
					break
				}
				if f == root {
					a.fail[e.to] = root
					break
				}
				f = a.fail[f]
			}
			if out := a.outputs[a.fail[e.to]]; len(out) > 0 {
				a.outputs[e.to] = append(a.outputs[e.to], out...)
			}
			queue = append(queue, e.to)
		}
	}
}

// step 沿一个字符转移
func (a *Automaton) step(from int, r rune) (int, bool) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	to, err := a.trie.Jump(buf[:n], from)
	if err != nil {
		return 0, false
	}
	return to, true
}

// Scan 扫描文本, 返回全部命中(含重叠), 按Begin升序, Begin相同时短的在前
func (a *Automaton) Scan(text []rune) []Match {
	var matches []Match
	state := root
	for i, r := range text {
		for {
			if next, ok := a.step(state, r); ok {
				state = next
				break
			}
			if state == root {
				break
			}
			state = a.fail[state]
		}
		for _, k := range a.outputs[state] {
			matches = append(matches, Match{Begin: i + 1 - a.lens[k], End: i + 1, Key: k})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Begin != matches[j].Begin {
			return matches[i].Begin < matches[j].Begin
		}
		return matches[i].Len() < matches[j].Len()
	})
	return matches
}

// Key 模式串
func (a *Automaton) Key(i int) string { return a.keys[i] }

// Len 模式串数量
func (a *Automaton) Len() int { return len(a.keys) }

func hasEdge(edges []edge, r rune) bool {
	for _, e := range edges {
		if e.r == r {
			return true
		}
	}
	return false
}
