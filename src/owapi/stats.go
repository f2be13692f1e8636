// Package owapi fetches and models player stat documents from ow-api.com.
//
// The stat document is five levels deep, so reading a value takes a lot of
// keys: mode ('quickPlayStats' or 'competitiveStats'), then 'careerStats',
// then a hero key ('allHeroes' by default or a single hero's API name), then
// a category ('average', 'game', ...), then the stat key itself.
package owapi

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Mode keys at the top of the stat document.
const (
	ModeQuickPlay   = "quickPlayStats"
	ModeCompetitive = "competitiveStats"
)

// HeroAll is the hero key aggregating stats over every hero.
const HeroAll = "allHeroes"

// Career stat keys used by derived table columns.
const (
	CategoryGame    = "game"
	StatTimePlayed  = "timePlayed"
	StatGamesPlayed = "gamesPlayed"
)

// StatValue is one leaf value in the stat document. The API mixes JSON
// numbers with formatted strings such as durations ("hh:mm:ss", "mm:ss") and
// percentages ("54%"), so decoding keeps both forms around.
type StatValue struct {
	Num   float64
	Str   string
	IsNum bool
}

func (v *StatValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*v = StatValue{}
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*v = StatValue{Str: str}
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		// booleans and other shapes are not comparable stats; drop them
		*v = StatValue{}
		return nil
	}
	*v = StatValue{Num: n, IsNum: true}
	return nil
}

func (v StatValue) MarshalJSON() ([]byte, error) {
	if v.IsNum {
		return json.Marshal(v.Num)
	}
	if v.Str != "" {
		return json.Marshal(v.Str)
	}
	return []byte("null"), nil
}

// Number converts the value to a plottable float. Durations become seconds,
// percentages lose the % suffix, anything unparseable becomes 0.
func (v StatValue) Number() float64 {
	if v.IsNum {
		return v.Num
	}
	s := strings.TrimSpace(v.Str)
	if s == "" {
		return 0
	}
	if i := strings.IndexByte(s, '%'); i >= 0 {
		n, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			return 0
		}
		return n
	}
	if strings.ContainsRune(s, ':') {
		return float64(clockToSeconds(s))
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// clockToSeconds converts "hh:mm:ss" or "mm:ss" strings to seconds.
func clockToSeconds(s string) int64 {
	mult := []int64{1, 60, 3600}
	parts := strings.Split(s, ":")
	var total int64
	for i := 0; i < len(parts) && i < len(mult); i++ {
		n, err := strconv.ParseInt(strings.TrimSpace(parts[len(parts)-1-i]), 10, 64)
		if err != nil {
			return 0
		}
		total += n * mult[i]
	}
	return total
}

// CategoryStats maps stat key -> value, e.g. "gamesWon" -> 42.
type CategoryStats map[string]StatValue

// CareerStats maps category -> stats, e.g. "game" -> {"gamesWon": 42, ...}.
type CareerStats map[string]CategoryStats

// ModeStats is the per-mode subtree. Hero entries may be JSON null for
// heroes the player never touched; those decode to nil maps.
type ModeStats struct {
	CareerStats map[string]CareerStats `json:"careerStats,omitempty"`
}

// StatsPayload is the root of the stat document for one player. Fields we
// never read are dropped on decode; the raw document is not preserved.
type StatsPayload struct {
	Name        string     `json:"name,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Endorsement int        `json:"endorsement,omitempty"`
	Private     bool       `json:"private"`
	QuickPlay   *ModeStats `json:"quickPlayStats,omitempty"`
	Competitive *ModeStats `json:"competitiveStats,omitempty"`
}

// Mode returns the subtree for a mode key, or nil when absent.
func (p *StatsPayload) Mode(mode string) *ModeStats {
	if p == nil {
		return nil
	}
	switch mode {
	case ModeQuickPlay:
		return p.QuickPlay
	case ModeCompetitive:
		return p.Competitive
	}
	return nil
}

// hero returns the career subtree for a hero key, or nil when the player has
// no recorded stats for it.
func (p *StatsPayload) hero(mode, hero string) CareerStats {
	m := p.Mode(mode)
	if m == nil {
		return nil
	}
	return m.CareerStats[hero]
}

// Categories returns the sorted category keys present for a profile/hero.
func (p *StatsPayload) Categories(mode, hero string) []string {
	cs := p.hero(mode, hero)
	if len(cs) == 0 {
		return nil
	}
	out := make([]string, 0, len(cs))
	for k := range cs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// StatKeys returns the sorted stat keys under one category for a
// profile/hero, used to populate the stat listbox.
func (p *StatsPayload) StatKeys(mode, hero, category string) []string {
	cs := p.hero(mode, hero)
	if cs == nil {
		return nil
	}
	cat := cs[category]
	if len(cat) == 0 {
		return nil
	}
	out := make([]string, 0, len(cat))
	for k := range cat {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Stat returns a single leaf value. ok is false when any key on the path is
// missing or the hero subtree is null.
func (p *StatsPayload) Stat(mode, hero, category, stat string) (StatValue, bool) {
	cs := p.hero(mode, hero)
	if cs == nil {
		return StatValue{}, false
	}
	cat, ok := cs[category]
	if !ok || cat == nil {
		return StatValue{}, false
	}
	v, ok := cat[stat]
	return v, ok
}

// StatNumber is Stat converted for charting; missing paths yield 0 so a
// profile lacking a hero still occupies a bar slot.
func (p *StatsPayload) StatNumber(mode, hero, category, stat string) float64 {
	v, ok := p.Stat(mode, hero, category, stat)
	if !ok {
		return 0
	}
	return v.Number()
}

// Playtime returns the seconds played for a profile/hero, 0 when unknown.
func (p *StatsPayload) Playtime(mode, hero string) float64 {
	return p.StatNumber(mode, hero, CategoryGame, StatTimePlayed)
}

// GamesPlayed returns the games played for a profile/hero, 0 when unknown.
func (p *StatsPayload) GamesPlayed(mode, hero string) float64 {
	return p.StatNumber(mode, hero, CategoryGame, StatGamesPlayed)
}
