package heroes

import "testing"

func TestProperName(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"dva", "D.Va", true},
		{"dVa", "D.Va", true},
		{"D.Va", "D.Va", true},
		{" wreckingball ", "Wrecking Ball", true},
		{"SOLDIER:76", "Soldier:76", true},
		{"soldier76", "Soldier:76", true},
		{"torbjorn", "Torbjorn", true},
		{"notahero", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ProperName(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ProperName(%q) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestAPIName(t *testing.T) {
	if n, ok := APIName("D.Va"); !ok || n != "dVa" {
		t.Fatalf("APIName(D.Va) = %q,%v", n, ok)
	}
	if n, ok := APIName("Wrecking Ball"); !ok || n != "wreckingBall" {
		t.Fatalf("APIName(Wrecking Ball) = %q,%v", n, ok)
	}
	if _, ok := APIName("dVa"); ok {
		t.Fatalf("APIName should only accept display names")
	}
}

func TestRoles(t *testing.T) {
	got := Roles()
	want := []string{"All", "Damage", "Support", "Tank"}
	if len(got) != len(want) {
		t.Fatalf("Roles() = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Roles()[%d] = %q want %q", i, got[i], want[i])
		}
	}
}

func TestByRole(t *testing.T) {
	all := ByRole(RoleAll)
	if len(all) != len(All()) {
		t.Fatalf("ByRole(All) = %d heroes want %d", len(all), len(All()))
	}
	var counted int
	for _, role := range []string{"Damage", "Tank", "Support"} {
		hs := ByRole(role)
		if len(hs) == 0 {
			t.Fatalf("ByRole(%s) returned no heroes", role)
		}
		for _, h := range hs {
			if string(h.Role) != role {
				t.Fatalf("ByRole(%s) returned %s with role %s", role, h.Name, h.Role)
			}
		}
		counted += len(hs)
	}
	if counted != len(all) {
		t.Fatalf("role sets do not partition roster: %d vs %d", counted, len(all))
	}
}

func TestColorFallback(t *testing.T) {
	if c := Color("D.Va"); c != "#ED93C7" {
		t.Fatalf("Color(D.Va) = %s", c)
	}
	if c := Color("dva"); c != "#ED93C7" {
		t.Fatalf("Color(dva) = %s", c)
	}
	if c := Color("nobody"); c != "#888888" {
		t.Fatalf("Color(nobody) = %s want neutral fallback", c)
	}
}
