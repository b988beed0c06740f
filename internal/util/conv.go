package util

import "strings"

// NormalizeID 去除首尾空白，路径参数和请求体中的ID统一走这里
func NormalizeID(s string) string {
	return strings.TrimSpace(s)
}
