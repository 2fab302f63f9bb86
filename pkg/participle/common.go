package participle

import "regexp"

// 标点符号、特殊符号、空白
var specialChar = regexp.MustCompile(`^[\p{P}\p{S}\p{Z}\s]+$`)

// IsSpecialChar 判断字符串是否全部为特殊符号
func IsSpecialChar(s string) bool {
	if s == "" {
		return false
	}
	return specialChar.MatchString(s)
}
