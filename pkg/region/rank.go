package region

import "strings"

// Rank 行政区划级别
type Rank int8

const (
	Province Rank = iota // 省级
	City                 // 地级
	County               // 县级
)

// Depth 嵌套深度, 省为0
func (r Rank) Depth() int { return int(r) }

// PrefixLen 该级别在6位编码中占用的前缀长度
func (r Rank) PrefixLen() int {
	switch r {
	case Province:
		return ProvinceCodeLen
	case City:
		return CityCodeLen
	default:
		return CountyCodeLen
	}
}

func (r Rank) String() string {
	switch r {
	case Province:
		return "province"
	case City:
		return "city"
	case County:
		return "county"
	}
	return "unknown"
}

// RankOf 根据6位编码末尾的0判断级别
func RankOf(code string) Rank {
	switch {
	case strings.HasSuffix(code, "0000"):
		return Province
	case strings.HasSuffix(code, "00"):
		return City
	default:
		return County
	}
}
