package services

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cameras & Lenses", "cameras-lenses"},
		{"Power Tools", "power-tools"},
		{"  DJ Equipment  ", "dj-equipment"},
		{"4K TVs", "4k-tvs"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
