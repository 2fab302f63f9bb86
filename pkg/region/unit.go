package region

import (
	"errors"
	"fmt"
	"strings"
)

const (
	FullCodeLen     = 12 // 字典中完整编码长度
	ProvinceCodeLen = 2
	CityCodeLen     = 4
	CountyCodeLen   = 6
)

var (
	ErrInvalidCode = errors.New("region: invalid code")
	ErrEmptyName   = errors.New("region: empty name")
)

// Record 字典记录
type Record struct {
	Code      string  `json:"code"`      // 行政区划编码
	Name      string  `json:"name"`      // 名称
	Longitude float64 `json:"longitude"` // 经度
	Latitude  float64 `json:"latitude"`  // 纬度
}

// Unit 行政区划单元
type Unit struct {
	Name string // 名称
	Code string // 6位编码
	Rank Rank   // 级别
}

// NewUnit 创建行政区划单元, 仅保留编码前6位
func NewUnit(name, code string) (*Unit, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(code) < CountyCodeLen || !isDigits(code) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	code = code[:CountyCodeLen]
	return &Unit{Name: name, Code: code, Rank: RankOf(code)}, nil
}

// BelongTo 判断是否隶属于parent (编码前缀在parent级别上一致)
func (u *Unit) BelongTo(parent *Unit) bool {
	if parent == nil {
		return false
	}
	return strings.HasPrefix(u.Code, parent.Code[:parent.Rank.PrefixLen()])
}

// FullCode 补0至12位的编码
func (u *Unit) FullCode() string { return PadCode(u.Code) }

func (u *Unit) String() string { return u.Name + "(" + u.Code + ")" }

// PadCode 将编码前缀补0至12位
func PadCode(prefix string) string {
	if len(prefix) >= FullCodeLen {
		return prefix[:FullCodeLen]
	}
	return prefix + strings.Repeat("0", FullCodeLen-len(prefix))
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
