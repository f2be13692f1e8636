// Package heroes holds the fixed Overwatch hero roster and lookups over it.
//
// Heroes are keyed by their display name (special characters dropped, e.g.
// Torbjörn is Torbjorn). Each entry carries the name used inside the API
// payload (e.g. 'dVa', 'wreckingBall'), the hero's role and the color used
// for that hero's bars in charts.
package heroes

import (
	"sort"
	"strings"
)

// Role is a hero's class label in the game.
type Role string

const (
	RoleDamage  Role = "Damage"
	RoleTank    Role = "Tank"
	RoleSupport Role = "Support"
)

// RoleAll is the pseudo-role used by the role filter dropdown.
const RoleAll = "All"

// Hero describes one roster entry.
type Hero struct {
	Name    string // display name, e.g. "D.Va"
	APIName string // payload key, e.g. "dVa"
	Role    Role
	Color   string // hex color for chart bars
}

// roster is fixed at build time; the API does not expose a hero list.
var roster = []Hero{
	{"Ana", "ana", RoleSupport, "#6E89B1"},
	{"Ashe", "ashe", RoleDamage, "#676869"},
	{"Baptiste", "baptiste", RoleSupport, "#57B2CB"},
	{"Bastion", "bastion", RoleDamage, "#7B8E79"},
	{"Brigitte", "brigitte", RoleSupport, "#8B625D"},
	{"Cassidy", "cassidy", RoleDamage, "#B05A5D"},
	{"D.Va", "dVa", RoleTank, "#ED93C7"},
	{"Doomfist", "doomfist", RoleDamage, "#83534B"},
	{"Echo", "echo", RoleDamage, "#9BCBF5"},
	{"Genji", "genji", RoleDamage, "#96EE42"},
	{"Hanzo", "hanzo", RoleDamage, "#B9B489"},
	{"Junker Queen", "junkerQueen", RoleTank, "#00C3FF"},
	{"Junkrat", "junkrat", RoleDamage, "#E9BC51"},
	{"Kiriko", "kiriko", RoleSupport, "#00C3FF"},
	{"Lifeweaver", "lifeweaver", RoleSupport, "#00C3FF"},
	{"Lucio", "lucio", RoleSupport, "#84C951"},
	{"Mei", "mei", RoleDamage, "#6CABEA"},
	{"Mercy", "mercy", RoleSupport, "#EBE9BB"},
	{"Moira", "moira", RoleSupport, "#9672E3"},
	{"Orisa", "orisa", RoleTank, "#458B42"},
	{"Pharah", "pharah", RoleDamage, "#3C7BC6"},
	{"Ramattra", "ramattra", RoleTank, "#00C3FF"},
	{"Reaper", "reaper", RoleDamage, "#7D3F51"},
	{"Reinhardt", "reinhardt", RoleTank, "#93A0A4"},
	{"Roadhog", "roadhog", RoleTank, "#B58C51"},
	{"Sigma", "sigma", RoleTank, "#93A0A4"},
	{"Sojourn", "sojourn", RoleDamage, "#00C3FF"},
	{"Soldier:76", "soldier76", RoleDamage, "#6A7794"},
	{"Sombra", "sombra", RoleDamage, "#735AB9"},
	{"Symmetra", "symmetra", RoleDamage, "#8FBDCE"},
	{"Torbjorn", "torbjorn", RoleDamage, "#BF736D"},
	{"Tracer", "tracer", RoleDamage, "#D89442"},
	{"Widowmaker", "widowmaker", RoleDamage, "#9D6AA6"},
	{"Winston", "winston", RoleTank, "#A0A5BB"},
	{"Wrecking Ball", "wreckingBall", RoleTank, "#DB9242"},
	{"Zarya", "zarya", RoleTank, "#E97FB6"},
	{"Zenyatta", "zenyatta", RoleSupport, "#EDE581"},
}

// All returns the full roster in display order.
func All() []Hero {
	out := make([]Hero, len(roster))
	copy(out, roster)
	return out
}

// Roles returns the sorted unique role labels plus "All" for the filter menu.
func Roles() []string {
	set := map[string]struct{}{RoleAll: {}}
	for _, h := range roster {
		set[string(h.Role)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// ByRole returns the heroes matching a role label; RoleAll returns everyone.
func ByRole(role string) []Hero {
	if role == RoleAll {
		return All()
	}
	var out []Hero
	for _, h := range roster {
		if string(h.Role) == role {
			out = append(out, h)
		}
	}
	return out
}

// Lookup finds a hero by display name.
func Lookup(name string) (Hero, bool) {
	for _, h := range roster {
		if h.Name == name {
			return h, true
		}
	}
	return Hero{}, false
}

// APIName converts a display name to its payload key (D.Va -> dVa).
func APIName(name string) (string, bool) {
	h, ok := Lookup(name)
	if !ok {
		return "", false
	}
	return h.APIName, true
}

// ProperName matches free-form user input against display or API names,
// case-insensitively (dva -> D.Va). Returns false when nothing matches.
func ProperName(input string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	for _, h := range roster {
		if in == strings.ToLower(h.Name) || in == strings.ToLower(h.APIName) {
			return h.Name, true
		}
	}
	return "", false
}

// Color returns the chart color for a hero, accepting either name form.
// Unknown heroes get a neutral grey so charts still render.
func Color(name string) string {
	if h, ok := Lookup(name); ok {
		return h.Color
	}
	if proper, ok := ProperName(name); ok {
		h, _ := Lookup(proper)
		return h.Color
	}
	return "#888888"
}
