package sign

import "testing"

func TestSign_DisplayRoundTrip(t *testing.T) {
	// Every sign must map bijectively to its display string.
	seen := make(map[string]Sign)

	for _, s := range All() {
		display := s.String()

		if prev, dup := seen[display]; dup {
			t.Errorf("display string %q shared by %v and %v", display, prev, s)
		}
		seen[display] = s

		parsed, ok := Parse(display)
		if !ok {
			t.Errorf("Parse(%q) failed for sign %v", display, s)
			continue
		}
		if parsed != s {
			t.Errorf("Parse(%q) = %v, want %v", display, parsed, s)
		}
	}

	if len(seen) != 38 {
		t.Errorf("expected 38 distinct signs (26 letters, 10 digits, SPACE, ?), got %d", len(seen))
	}
}

func TestParse_UnknownString(t *testing.T) {
	if _, ok := Parse("not-a-sign"); ok {
		t.Error("Parse should reject strings that name no sign")
	}
}

func TestSign_SpecialDisplayStrings(t *testing.T) {
	if Unknown.String() != "?" {
		t.Errorf("Unknown displays as %q, want \"?\"", Unknown.String())
	}
	if Space.String() != "SPACE" {
		t.Errorf("Space displays as %q, want \"SPACE\"", Space.String())
	}
	if Five.String() != "5" {
		t.Errorf("Five displays as %q, want \"5\"", Five.String())
	}
}
