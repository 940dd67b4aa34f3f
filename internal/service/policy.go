package service

import "time"

// DefaultBanDays 默认封禁窗口
const DefaultBanDays = 30

// BanWindow 封禁窗口：banUntil = bannedAt + days
func BanWindow(now time.Time, days int) (bannedAt, banUntil time.Time) {
	return now, now.AddDate(0, 0, days)
}

// pageInRange GoToPage 不做钳制，范围检查都在这里。
// 空结果只接受第 1 页
func pageInRange(page, pageCount int) bool {
	if page < 1 {
		return false
	}
	if pageCount == 0 {
		return page == 1
	}
	return page <= pageCount
}
