package clean

import "testing"

func TestParseNumeric(t *testing.T) {
	valid := map[string]float64{
		"0":          0,
		"12.5":       12.5,
		"-73.2":      -73.2,
		"+4":         4,
		".5":         0.5,
		"1e3":        1000,
		"120000.000": 120000,
	}
	for s, want := range valid {
		v, ok := ParseNumeric(s)
		if !ok {
			t.Errorf("ParseNumeric(%q) should succeed", s)
			continue
		}
		if v != want {
			t.Errorf("ParseNumeric(%q) = %v, want %v", s, v, want)
		}
	}
}

func TestParseNumericRejects(t *testing.T) {
	invalid := []string{"", " ", "abc", "12x3", "4#00", "12.5.6", "--3", "4500\r", "NaN", "Inf", "-Inf", "0x1p3", "1_000.5", "1_2_3"}
	for _, s := range invalid {
		if _, ok := ParseNumeric(s); ok {
			t.Errorf("ParseNumeric(%q) should fail", s)
		}
	}
}
