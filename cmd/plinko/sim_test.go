package main

import "testing"

func TestParseAim(t *testing.T) {
	center, err := parseAim("center", 1)
	if err != nil || center(400) != 200 {
		t.Errorf("center aim = %v, %v", center(400), err)
	}

	fixed, err := parseAim("120.5", 1)
	if err != nil || fixed(400) != 120.5 {
		t.Errorf("fixed aim = %v, %v", fixed(400), err)
	}

	random, err := parseAim("random", 1)
	if err != nil {
		t.Fatalf("random aim: %v", err)
	}
	for i := 0; i < 100; i++ {
		if x := random(400); x < 0 || x >= 400 {
			t.Fatalf("random aim %v outside the board", x)
		}
	}

	if _, err := parseAim("left", 1); err == nil {
		t.Error("parseAim should reject unknown values")
	}
}
