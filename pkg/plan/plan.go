// Package plan carries the static yearly planning data shown on the
// dashboard: the stress forecast curve, the quarterly timeline, and the
// emergency protocols. All of it is read-only.
package plan

// ForecastPoint is one sampled week of the yearly stress forecast.
type ForecastPoint struct {
	Week   string
	Stress int
}

// StressWarnLevel marks the start of the crisis band on the 1–10 scale.
const StressWarnLevel = 8

// Forecast is the W1–W52 stress projection.
var Forecast = []ForecastPoint{
	{"W1", 4}, {"W5", 7}, {"W9", 9},
	{"W13", 6}, {"W16", 8}, {"W20", 10},
	{"W26", 5}, {"W32", 3}, {"W40", 4}, {"W52", 2},
}

// Quarter describes one quarter of the yearly timeline.
type Quarter struct {
	Q        string
	Weeks    string
	Focus    string
	Location string
}

// Quarters is the strategic quarter view.
var Quarters = []Quarter{
	{"Q1", "W1-13", "基礎建設", "Mix"},
	{"Q2", "W14-26", "地獄與突破", "Japan"},
	{"Q3", "W27-39", "收穫與轉型", "Mix"},
	{"Q4", "W40-52", "穩定與收割", "Taiwan"},
}

// Protocol is an automatic defense rule: when the threshold holds, take the
// action.
type Protocol struct {
	Title  string
	Action string
}

// Protocols are the emergency rules displayed beside the weekly summary.
var Protocols = []Protocol{
	{"壓力 > 7 (持續1週)", "取消DJ課程，減少社交"},
	{"壓力 9-10 (極限)", "啟動緊急休假 (1-3天)，完全離線"},
	{"Trading 虧損 > 10%", "停止自動交易，不追加資金，Review策略"},
	{"睡眠 < 6hr (持續3天)", "啟動危機模式週：僅工作+睡眠"},
}
