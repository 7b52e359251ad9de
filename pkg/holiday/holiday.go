// Package holiday carries the static 2026 public holiday tables for Taiwan
// and Japan. The tables are read-only; a date resolves against the table of
// the location it is spent in.
package holiday

import "github.com/ycwu/lifedash/pkg/location"

// Lookup returns the holiday name for the given location and ISO date, and
// whether one exists.
func Lookup(loc location.Code, date string) (string, bool) {
	t, ok := tables[loc]
	if !ok {
		return "", false
	}
	name, ok := t[date]
	return name, ok
}

var tables = map[location.Code]map[string]string{
	location.Taiwan: {
		"2026-01-01": "元旦",
		"2026-01-26": "除夕",
		"2026-01-27": "春節",
		"2026-01-28": "春節",
		"2026-01-29": "春節",
		"2026-02-28": "和平紀念日",
		"2026-04-04": "兒童節",
		"2026-04-05": "清明節",
		"2026-05-01": "勞動節",
		"2026-05-31": "端午節",
		"2026-10-04": "中秋節",
		"2026-10-10": "國慶日",
	},
	location.Japan: {
		"2026-01-01": "元日",
		"2026-01-12": "成人の日",
		"2026-02-11": "建国記念の日",
		"2026-02-23": "天皇誕生日",
		"2026-03-20": "春分の日",
		"2026-04-29": "昭和の日",
		"2026-05-03": "憲法記念日",
		"2026-05-04": "みどりの日",
		"2026-05-05": "こどもの日",
		"2026-07-20": "海の日",
		"2026-08-11": "山の日",
		"2026-09-21": "敬老の日",
		"2026-09-22": "秋分の日",
		"2026-10-12": "スポーツの日",
		"2026-11-03": "文化の日",
		"2026-11-23": "勤労感謝の日",
	},
}
