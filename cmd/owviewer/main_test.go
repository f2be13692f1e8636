package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Clovis5119/overwatch-stats/src/heroes"
	"github.com/Clovis5119/overwatch-stats/src/owapi"
	"github.com/Clovis5119/overwatch-stats/src/profile"
)

func TestNormalizeTag(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Clovis#1467", "Clovis-1467"},
		{"  Clovis#1467  ", "Clovis-1467"},
		{"Clovis-1467", "Clovis-1467"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalizeTag(c.in); got != c.want {
			t.Fatalf("normalizeTag(%q) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestHeroNamesFollowsRoleFilter(t *testing.T) {
	all := heroNames(heroes.RoleAll)
	if len(all) != len(heroes.All()) {
		t.Fatalf("All role should list every hero: got %d want %d", len(all), len(heroes.All()))
	}
	tanks := heroNames(string(heroes.RoleTank))
	if len(tanks) == 0 || len(tanks) >= len(all) {
		t.Fatalf("tank filter looks wrong: %d of %d", len(tanks), len(all))
	}
	for _, n := range tanks {
		h, ok := heroes.Lookup(n)
		if !ok || h.Role != heroes.RoleTank {
			t.Fatalf("%s listed under Tank filter", n)
		}
	}
}

func TestAddFailureReason(t *testing.T) {
	if got := addFailureReason(fmt.Errorf("x: %w", profile.ErrPrivateProfile)); !strings.Contains(got, "private") {
		t.Fatalf("private profile reason = %q", got)
	}
	if got := addFailureReason(&owapi.APIError{StatusCode: 404}); !strings.Contains(got, "could not be found") {
		t.Fatalf("404 reason = %q", got)
	}
	if got := addFailureReason(errors.New("boom")); got != "boom" {
		t.Fatalf("fallback reason = %q", got)
	}
}

func TestBlankAndHintKeepBounds(t *testing.T) {
	img := blank(320, 200)
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("blank bounds %v", b)
	}
	hinted := drawHint(img, "Hint: test")
	if b := hinted.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("hint changed bounds: %v", b)
	}
	if drawHint(nil, "x") != nil {
		t.Fatalf("nil image should pass through")
	}
	if got := drawHint(img, "  "); got != img {
		t.Fatalf("empty text should return the original image")
	}
}
