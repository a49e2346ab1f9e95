package namegen_test

import (
	"regexp"
	"testing"

	"skylift/pkg/namegen"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Learning Assistant", "learning-assistant"},
		{"my_app", "my-app"},
		{"  Mixed  CASE 42 ", "mixed-case-42"},
		{"weird!!chars##here", "weird-chars-here"},
		{"---", ""},
		{"already-fine", "already-fine"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := namegen.Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSuffix(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+$`)

	t.Run("Length", func(t *testing.T) {
		if got := namegen.Suffix(4); len(got) != 4 {
			t.Errorf("expected 4 chars, got %q", got)
		}
	})

	t.Run("Alphabet", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			if s := namegen.Suffix(8); !valid.MatchString(s) {
				t.Errorf("suffix %q contains invalid characters", s)
			}
		}
	})

	t.Run("Zero Defaults To Four", func(t *testing.T) {
		if got := namegen.Suffix(0); len(got) != 4 {
			t.Errorf("expected default 4 chars, got %q", got)
		}
	})
}
