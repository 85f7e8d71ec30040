package util

import "strings"

// MaskNick 对外展示场景下的昵称脱敏
func MaskNick(nick string) string {
	if len(nick) <= 2 {
		return nick
	}
	return nick[:1] + strings.Repeat("*", len(nick)-2) + nick[len(nick)-1:]
}

// SalaryWindow 相似职位检索用的薪资上下界，幅度 ±30%
func SalaryWindow(salary int64) (int64, int64) {
	return salary * 7 / 10, salary * 13 / 10
}
