package cpca

import "encoding/json"

// Span 名称在原文中的位置, rune下标, 左闭右开
type Span struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// Segmentation 省市区提取结果
type Segmentation struct {
	ProvinceName string `json:"provinceName,omitempty"` // 省
	CityName     string `json:"cityName,omitempty"`     // 市
	AreaName     string `json:"areaName,omitempty"`     // 区县
	Code         string `json:"cpcaCode,omitempty"`     // 6位编码
	Address      string `json:"address,omitempty"`      // 去掉省市区后的地址

	ProvinceSpan *Span `json:"provinceNameIndex,omitempty"`
	CitySpan     *Span `json:"cityNameIndex,omitempty"`
	AreaSpan     *Span `json:"areaNameIndex,omitempty"`
}

// none 未识别出省市区, 整个输入作为地址
func none(location string) Segmentation {
	return Segmentation{Address: location}
}

// HasPCA 至少包含省、市、区一处信息
func (s *Segmentation) HasPCA() bool {
	return s.ProvinceName != "" || s.CityName != "" || s.AreaName != ""
}

// NoPCA 不含省、市、区信息
func (s *Segmentation) NoPCA() bool { return !s.HasPCA() }

// FullPCA 省、市、区都有
func (s *Segmentation) FullPCA() bool {
	return s.ProvinceName != "" && s.CityName != "" && s.AreaName != ""
}

func (s *Segmentation) HasProvince() bool { return s.ProvinceSpan != nil }
func (s *Segmentation) HasCity() bool     { return s.CitySpan != nil }
func (s *Segmentation) HasArea() bool     { return s.AreaSpan != nil }
func (s *Segmentation) HasAddress() bool  { return s.Address != "" }

// Reset 清空全部字段
func (s *Segmentation) Reset() { *s = Segmentation{} }

// String JSON形式, 用于日志
func (s Segmentation) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(b)
}
