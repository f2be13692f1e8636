package uihelpers

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ComputeChartDimensions applies width/height clamp rules used for the chart.
// Input: desired raw width (e.g., canvas width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.45)
	if h < 320 {
		h = 320
	}
	if h > 560 {
		h = 560
	}
	return w, h
}

// ComputeBarWidth divides the chart width over n bars, clamped so a lone bar
// doesn't fill the canvas and a crowded chart stays legible.
func ComputeBarWidth(chartW, n int) int {
	if n <= 0 {
		return 60
	}
	w := (chartW - 120) / (n * 2)
	if w < 14 {
		w = 14
	}
	if w > 90 {
		w = 90
	}
	return w
}

// BuildNumericTicks generates up to n tick marks spanning [min,max] using the
// 1,2,2.5,5 pattern. Label formatting is left to the caller.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// round6 rounds to 6 decimal places to stabilize labels and comparisons.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// FormatNumericTick provides a compact axis label.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av == 0:
		return "0"
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// AxisRange picks the Y range for a stat. Percentage-of-games stats get a
// fixed 25..75 window so small win-rate differences stay visible; everything
// else is anchored at zero with a rounded max.
func AxisRange(stat string, maxVal float64) (float64, float64) {
	if strings.Contains(stat, "Percentage") {
		return 25, 75
	}
	if maxVal <= 0 {
		maxVal = 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(maxVal)))
	top := math.Ceil(maxVal/mag) * mag
	if top <= maxVal {
		top += mag
	}
	return 0, top
}

// PrettyStatLabel expands a camelCase API stat key into a readable title,
// e.g. "healingDoneAvgPer10Min" -> "Healing Done Avg Per 10 Min".
func PrettyStatLabel(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && !unicode.IsUpper(prev) && !unicode.IsDigit(prev):
			b.WriteByte(' ')
		case unicode.IsDigit(r) && !unicode.IsDigit(prev):
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	// second pass: split letter runs that follow digits ("10Min")
	out := b.String()
	var final strings.Builder
	rs := []rune(out)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) && unicode.IsDigit(rs[i-1]) {
			final.WriteByte(' ')
		}
		final.WriteRune(r)
	}
	return final.String()
}

// BarLabel builds the per-bar caption: player on top of the hero, with an
// optional marker for low-playtime entries.
func BarLabel(player, hero string, lowTime bool) string {
	l := player + "\n" + hero
	if lowTime {
		l += " *"
	}
	return l
}
