package teambar

import "testing"

func TestSummarize(t *testing.T) {
	result := DetectionResult{
		1: "ana", 2: "mercy", 3: "reinhardt", 4: "tracer", 5: "winston", 6: "zarya",
		7: "dva", 8: "genji", 9: "hanzo", 10: "lucio", 11: "mccree", 12: "mei",
	}

	got := summarize(result, nil)
	want := "A: ana mercy reinhardt tracer winston zarya\nB: dva genji hanzo lucio mccree mei"
	if got != want {
		t.Errorf("summarize:\ngot  %q\nwant %q", got, want)
	}
}

func TestSummarize_TeamNames(t *testing.T) {
	result := DetectionResult{}
	for slot := 1; slot <= SLOT_COUNT; slot++ {
		result[slot] = "ana"
	}

	got := summarize(result, map[string]string{"A": "Fuel", "B": "Shock"})
	want := "Fuel: ana ana ana ana ana ana\nShock: ana ana ana ana ana ana"
	if got != want {
		t.Errorf("summarize with team names:\ngot  %q\nwant %q", got, want)
	}
}
