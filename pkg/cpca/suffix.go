package cpca

import (
	"slices"
	"strings"
)

var (
	// 带省名或市名的道路
	roadSuffixes2 = []string{"大路", "大道", "大街", "东路", "南路", "西路", "北路",
		"东街", "南街", "西街", "北街", "街道", "胡同"}
	roadSuffixes1 = []string{"路", "街", "道"}
	numerals      = []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
	// 村、屯等
	villageSuffixes = []string{"村", "屯", "庄", "家", "山", "河", "沟", "湾", "坪", "塘", "坝",
		"岗", "场", "湖", "岭", "堡", "坡", "峪", "岩", "溪", "凼", "岛"}
	schoolMarkers = []string{"幼儿园", "小学", "中学", "学院", "大学"}
)

// peek 取end之后的n个字符, 不足n个返回空串与false
func peek(text []rune, end, n int) (string, bool) {
	if len(text)-end < n {
		return "", false
	}
	return string(text[end : end+n]), true
}

// isUnit 名称之后紧跟镇、道路、大厦、村、学校等, 说明命中的是单位名称的一部分
func isUnit(end int, text []rune) bool {
	return isTown(end, text) ||
		isRoad(end, text) ||
		isBuilding(end, text) ||
		isVillage(end, text) ||
		isSchool(end, text)
}

// isTown 如xx镇、xx乡
func isTown(end int, text []rune) bool {
	s, ok := peek(text, end, 1)
	return ok && (s == "镇" || s == "乡")
}

// isRoad 如上海路、杭州大道、温州三街
func isRoad(end int, text []rune) bool {
	if s, ok := peek(text, end, 2); ok {
		if slices.Contains(roadSuffixes2, s) {
			return true
		}
		for _, num := range numerals {
			for _, suffix := range roadSuffixes1 {
				if s == num+suffix {
					return true
				}
			}
		}
	}
	s, ok := peek(text, end, 1)
	return ok && slices.Contains(roadSuffixes1, s)
}

// isBuilding 如上海大厦
func isBuilding(end int, text []rune) bool {
	s, ok := peek(text, end, 2)
	return ok && s == "大厦"
}

// isVillage 如温州村
func isVillage(end int, text []rune) bool {
	s, ok := peek(text, end, 1)
	return ok && slices.Contains(villageSuffixes, s)
}

// isSchool 如杭州中学, 向后最多看6个字符
func isSchool(end int, text []rune) bool {
	if len(text)-end < 2 {
		return false
	}
	s := string(text[end:min(end+6, len(text))])
	for _, marker := range schoolMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// isArea 名称之后紧跟区或县, 如杭州区
func isArea(end int, text []rune) bool {
	s, ok := peek(text, end, 1)
	return ok && (s == "区" || s == "县")
}
