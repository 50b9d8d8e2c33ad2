package core

import "testing"

func TestParseColor(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		got, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", c.String(), got, c)
		}
	}

	if got, err := ParseColor(""); err != nil || got != ColorDefault {
		t.Errorf("ParseColor(\"\") = %v, %v; expected default", got, err)
	}
	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}
