// Package selection tracks the user's current profile/hero/stat choices and
// derives the menu contents from them.
//
// The stat options offered for a selection are always the intersection of
// the stat keys present in every selected profile/hero payload, so menus
// only ever offer stats that can actually be compared.
package selection

import (
	"strings"

	"github.com/Clovis5119/overwatch-stats/src/heroes"
	"github.com/Clovis5119/overwatch-stats/src/owapi"
)

// Stat category presets offered in the dropdown. The API exposes a few more
// categories than these, but they are not useful for comparisons.
var Presets = []string{
	"assists", "average", "best", "combat", "heroSpecific",
	"game", "matchAwards", "miscellaneous",
}

// PresetHeroSpecific only makes sense when exactly one hero is selected.
const PresetHeroSpecific = "heroSpecific"

// DefaultPreset is applied when the preset menu resets.
const DefaultPreset = "average"

// MinComparableSeconds marks heroes with too little playtime for the stat
// comparison to mean much (3 hours).
const MinComparableSeconds = 3 * 3600

// Row is one bar in the output table: a single profile/hero pairing.
type Row struct {
	Player      string // short tag, battletag digits stripped
	Hero        string // display name
	Color       string // hero chart color
	GamesPlayed float64
	LowTime     bool // under MinComparableSeconds of playtime
	Value       float64
}

// State holds the current selection. It lives on the UI event loop; no
// locking.
type State struct {
	mode     string
	preset   string
	stat     string
	profiles []string
	payloads map[string]*owapi.StatsPayload
	heroList []string
}

// New starts with quickplay mode and the default preset, nothing selected.
func New() *State {
	return &State{
		mode:     owapi.ModeQuickPlay,
		preset:   DefaultPreset,
		payloads: map[string]*owapi.StatsPayload{},
	}
}

// Profiles returns the selected profile tags in insertion order.
func (s *State) Profiles() []string {
	out := make([]string, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Heroes returns the selected hero display names in insertion order.
func (s *State) Heroes() []string {
	out := make([]string, len(s.heroList))
	copy(out, s.heroList)
	return out
}

// Payload returns the stat payload held for a profile.
func (s *State) Payload(tag string) (*owapi.StatsPayload, bool) {
	p, ok := s.payloads[tag]
	return p, ok
}

// AddProfile adds a profile with its fetched payload. Adding an existing
// tag just swaps the payload (a refresh).
func (s *State) AddProfile(tag string, payload *owapi.StatsPayload) {
	if _, ok := s.payloads[tag]; !ok {
		s.profiles = append(s.profiles, tag)
	}
	s.payloads[tag] = payload
	s.revalidate()
}

// RemoveProfile drops a profile and its payload from the selection.
func (s *State) RemoveProfile(tag string) {
	delete(s.payloads, tag)
	for i, t := range s.profiles {
		if t == tag {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			break
		}
	}
	s.revalidate()
}

// AddHero adds a hero by display name; duplicates and unknown names are
// rejected.
func (s *State) AddHero(name string) bool {
	if _, ok := heroes.Lookup(name); !ok {
		return false
	}
	for _, h := range s.heroList {
		if h == name {
			return false
		}
	}
	s.heroList = append(s.heroList, name)
	s.revalidate()
	return true
}

// RemoveHero drops a hero from the selection.
func (s *State) RemoveHero(name string) {
	for i, h := range s.heroList {
		if h == name {
			s.heroList = append(s.heroList[:i], s.heroList[i+1:]...)
			break
		}
	}
	s.revalidate()
}

// SetHeroes replaces the hero selection wholesale (role preset buttons).
func (s *State) SetHeroes(names []string) {
	s.heroList = nil
	for _, n := range names {
		if _, ok := heroes.Lookup(n); ok {
			s.heroList = append(s.heroList, n)
		}
	}
	s.revalidate()
}

// ClearHeroes empties the hero selection.
func (s *State) ClearHeroes() {
	s.heroList = nil
	s.revalidate()
}

// Mode returns the current mode key.
func (s *State) Mode() string { return s.mode }

// SetMode switches between quickplay and competitive stats.
func (s *State) SetMode(mode string) {
	if mode != owapi.ModeQuickPlay && mode != owapi.ModeCompetitive {
		return
	}
	s.mode = mode
	s.revalidate()
}

// Preset returns the current stat category preset.
func (s *State) Preset() string { return s.preset }

// SetPreset selects a stat category; it must be currently offered.
func (s *State) SetPreset(p string) bool {
	for _, opt := range s.PresetOptions() {
		if opt == p {
			s.preset = p
			s.revalidate()
			return true
		}
	}
	return false
}

// Stat returns the selected stat key, empty when none.
func (s *State) Stat() string { return s.stat }

// SelectStat picks a concrete stat; it must be among the current options.
func (s *State) SelectStat(stat string) bool {
	for _, opt := range s.StatOptions() {
		if opt == stat {
			s.stat = stat
			return true
		}
	}
	return false
}

// PresetOptions returns the category presets valid for the hero selection:
// no heroes -> nothing; one hero -> everything; several heroes -> everything
// except heroSpecific.
func (s *State) PresetOptions() []string {
	switch len(s.heroList) {
	case 0:
		return nil
	case 1:
		out := make([]string, len(Presets))
		copy(out, Presets)
		return out
	default:
		out := make([]string, 0, len(Presets)-1)
		for _, p := range Presets {
			if p != PresetHeroSpecific {
				out = append(out, p)
			}
		}
		return out
	}
}

// StatOptions returns the stat keys offered for the current selection: the
// intersection of keys present under [mode][careerStats][hero][preset] for
// every selected profile and hero.
func (s *State) StatOptions() []string {
	if len(s.profiles) == 0 || len(s.heroList) == 0 || s.preset == "" {
		return nil
	}
	if s.preset == PresetHeroSpecific && len(s.heroList) > 1 {
		return nil
	}
	var common []string
	first := true
	for _, tag := range s.profiles {
		payload := s.payloads[tag]
		for _, heroName := range s.heroList {
			api, _ := heroes.APIName(heroName)
			keys := payload.StatKeys(s.mode, api, s.preset)
			if first {
				common = keys
				first = false
				continue
			}
			common = intersect(common, keys)
			if len(common) == 0 {
				return nil
			}
		}
	}
	return common
}

// RunEnabled reports whether a chart can be built: at least one profile and
// hero selected and a still-valid stat chosen.
func (s *State) RunEnabled() bool {
	return len(s.profiles) > 0 && len(s.heroList) > 0 && s.stat != ""
}

// BuildTable flattens the selection into chart rows, one per profile/hero.
// Heroes missing from a payload get a zero value so every pairing keeps its
// bar slot.
func (s *State) BuildTable() []Row {
	if !s.RunEnabled() {
		return nil
	}
	rows := make([]Row, 0, len(s.profiles)*len(s.heroList))
	for _, tag := range s.profiles {
		payload := s.payloads[tag]
		for _, heroName := range s.heroList {
			api, _ := heroes.APIName(heroName)
			rows = append(rows, Row{
				Player:      shortTag(tag),
				Hero:        heroName,
				Color:       heroes.Color(heroName),
				GamesPlayed: payload.GamesPlayed(s.mode, api),
				LowTime:     payload.Playtime(s.mode, api) < MinComparableSeconds,
				Value:       payload.StatNumber(s.mode, api, s.preset, s.stat),
			})
		}
	}
	return rows
}

// revalidate drops a selected stat that the current selection no longer
// offers, and falls back off heroSpecific when it stops being valid.
func (s *State) revalidate() {
	if s.preset == PresetHeroSpecific && len(s.heroList) > 1 {
		s.preset = DefaultPreset
	}
	if s.stat == "" {
		return
	}
	for _, opt := range s.StatOptions() {
		if opt == s.stat {
			return
		}
	}
	s.stat = ""
}

// intersect keeps the elements of a (already sorted) that also occur in b.
func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, k := range b {
		set[k] = struct{}{}
	}
	out := a[:0]
	for _, k := range a {
		if _, ok := set[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// shortTag strips the battletag discriminator (Clovis-1467 -> Clovis).
func shortTag(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}
