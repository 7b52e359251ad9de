// Package template holds the fixed daily-schedule templates and renders the
// copyable markdown daily-log document built from them.
package template

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Template is one fixed daily-schedule mode.
type Template struct {
	Key       string
	Name      string
	Intensity string
	Desc      string
	Schedule  string
}

// All returns the templates in display order.
func All() []Template {
	return templates
}

// Get looks a template up by its key (A, B, C, D, F).
func Get(key string) (Template, bool) {
	for _, t := range templates {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}

// Markdown renders the fixed daily-log markdown document for the template on
// the given ISO date.
func Markdown(t Template, date string) string {
	return fmt.Sprintf(`### %s (模式 %s)
**今日模式**: %s - %s
**能量狀態**: ⭐⭐⭐⭐ (4/5)
**壓力指數**: ___/10

---

#### 📅 執行時間表
`+"```\n%s\n```"+`

#### ✅ 完成事項
- [ ]
- [ ]
- [ ]

#### 📝 筆記與覆盤
-

#### 🎯 明日重點
-
`, date, t.Key, t.Name, t.Intensity, t.Schedule)
}

// Copy writes the markdown to the system clipboard.
func Copy(md string) error {
	return clipboard.WriteAll(md)
}

var templates = []Template{
	{
		Key:       "A",
		Name:      "A: 在台標準週",
		Intensity: "中強度",
		Desc:      "適合一般工作週，平衡家庭與開發",
		Schedule: `06:00-07:00 | 🏃 運動（跑步/重訓/游泳）
07:00-09:00 | 💻 個人項目（Claude code/Trading）
09:00-18:00 | 💼 Work (Mikai)
18:00-20:00 | 🚇 通勤 + 晚餐
20:00-22:00 | 👶 嬰兒陪伴（洗澡、玩耍）
22:00-23:00 | 📚 個人學習 or 📱 社群
23:00-06:00 | 💤 睡眠`,
	},
	{
		Key:       "B",
		Name:      "B: 在台高強度週",
		Intensity: "衝刺期",
		Desc:      "Claude Code 衝刺專用，壓縮睡眠",
		Schedule: `05:30-06:30 | 🏃 運動（提早）
06:30-09:00 | 💻 個人項目密集開發
09:00-18:00 | 💼 Work
18:00-20:00 | 🚇 通勤 + 晚餐
20:00-22:00 | 👶 嬰兒陪伴
22:00-00:00 | 💻 個人項目續作
00:00-05:30 | 💤 睡眠（5.5小時 - 僅短期）`,
	},
	{
		Key:       "C",
		Name:      "C: 在日標準週",
		Intensity: "標準",
		Desc:      "適合一般在日工作，包含 DJ 學習",
		Schedule: `06:00-06:15 | 🧘 晨間伸展
06:15-07:30 | 準備 + 早餐
07:30-09:00 | 🚇 通勤 + 🎧 日文podcast
09:00-19:00 | 💼 Work
19:00-20:00 | 🍜 晚餐
20:00-20:15 | 👶 與嬰兒視訊
20:15-21:00 | 🎧 DJ理論學習 or 📚 日文
21:00-22:00 | 💼 處理台灣事務
22:00-06:00 | 💤 睡眠`,
	},
	{
		Key:       "D",
		Name:      "D: 在日高強度週",
		Intensity: "交接/M&A",
		Desc:      "Mikai 交接高峰期，取消娛樂",
		Schedule: `06:00-07:30 | 準備（取消運動）
07:30-09:00 | 🚇 通勤
09:00-13:00 | 💼 Mikai交接 or M&A
13:00-14:00 | 🍱 午餐
14:00-20:00 | 💼 Work續作
20:00-20:15 | 👶 視訊
20:15-21:00 | 🍜 晚餐
21:00-22:00 | 💼 處理文件
22:00-06:00 | 💤 睡眠`,
	},
	{
		Key:       "F",
		Name:      "F: 危機模式",
		Intensity: "Burnout Protocol",
		Desc:      "壓力>9 或生病時使用。僅生存。",
		Schedule: `06:00-07:30 | 準備 (緩慢節奏)
07:30-09:00 | 通勤
09:00-19:00 | 💼 僅處理核心工作
19:00-20:00 | 晚餐
20:00-20:15 | 👶 視訊 (維持連結)
20:15-21:00 | 🧘 冥想/散步 (無電子產品)
21:00-06:00 | 💤 強制睡眠 (9小時)`,
	},
}
