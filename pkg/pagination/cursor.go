// Package pagination 提供基于时间戳游标的分页工具
package pagination

import (
	"strings"
	"time"
)

var cursorLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCursor 解析游标，空值或无法解析时返回 nil（视为从头开始）
func ParseCursor(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range cursorLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// EncodeCursor 把时间戳编码为游标（UTC，纳秒精度）
func EncodeCursor(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Trim 截断多取的一行，返回保留的行以及是否还有下一页
func Trim[T any](rows []T, limit int) ([]T, bool) {
	if limit < 0 {
		limit = 0
	}
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
