package strength

import "testing"

func TestAssessTiers(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{10014, 1.0},  // royal flush plus kicker salt
		{10000, 1.0},  // royal flush
		{9005, 0.92},  // straight flush
		{8000, 0.85},  // four of a kind
		{7012, 0.75},  // full house
		{6000, 0.65},  // flush
		{5009, 0.55},  // straight
		{4000, 0.45},  // three of a kind
		{3003, 0.35},  // two pair
		{2000, 0.22},  // one pair
		{0, 0.10},     // no hand at all
		{-500, 0.10},  // garbage input clamps to the floor
	}
	for _, tt := range tests {
		if got := Assess(tt.score); got != tt.want {
			t.Errorf("Assess(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestAssessHighCardRamp(t *testing.T) {
	sevenHigh := Assess(1007)
	aceHigh := Assess(1014)
	if sevenHigh >= aceHigh {
		t.Errorf("ace high should read stronger than seven high: %v vs %v", aceHigh, sevenHigh)
	}
	if aceHigh >= 0.22 {
		t.Errorf("any high card should stay below the one-pair tier, got %v", aceHigh)
	}
	if sevenHigh <= 0.10 {
		t.Errorf("a real high card should sit above the floor, got %v", sevenHigh)
	}
}

func TestAssessMonotone(t *testing.T) {
	prev := Assess(-100)
	for score := 0; score <= 10014; score += 7 {
		got := Assess(score)
		if got < prev {
			t.Fatalf("Assess(%d) = %v dips below the previous value %v", score, got, prev)
		}
		if got < 0 || got > 1 {
			t.Fatalf("Assess(%d) = %v outside [0, 1]", score, got)
		}
		prev = got
	}
}

func TestBattleBonusPercent(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{10002, 50},
		{9000, 40},
		{8010, 30},
		{7000, 25},
		{6003, 20},
		{5000, 15},
		{4011, 10},
		{3000, 5},
		{2014, 0}, // one pair earns nothing
		{1009, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := BattleBonusPercent(tt.score); got != tt.want {
			t.Errorf("BattleBonusPercent(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{10000, "Royal Flush"},
		{9001, "Straight Flush"},
		{8000, "Four of a Kind"},
		{7005, "Full House"},
		{6000, "Flush"},
		{5000, "Straight"},
		{4002, "Three of a Kind"},
		{3000, "Two Pair"},
		{2007, "One Pair"},
		{1013, "High Card"},
		{0, "High Card"},
	}
	for _, tt := range tests {
		if got := Describe(tt.score); got != tt.want {
			t.Errorf("Describe(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
