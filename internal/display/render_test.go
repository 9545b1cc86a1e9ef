package display

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/battle"
	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/simulator"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestPresetTable(t *testing.T) {
	out := PresetTable(ai.Presets())

	for _, want := range []string{"NAME", "RATING", "Foolhardy", "Muscle-headed", "Condescending"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected preset table to contain %q", want)
		}
	}

	lines := strings.Count(out, "\n")
	if lines < len(ai.Presets()) {
		t.Errorf("Expected at least %d lines, got %d", len(ai.Presets()), lines)
	}
}

func TestBestiaryTable(t *testing.T) {
	db, err := monster.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	out := BestiaryTable(db.All())

	for _, want := range []string{"RARITY", "EFFECT", "PixelPup", "chip-bonus"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected bestiary table to contain %q", want)
		}
	}
}

func TestMonsterCard(t *testing.T) {
	db, err := monster.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	pup, err := db.Spawn("PixelPup", 5)
	if err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}

	out := MonsterCard(pup)

	for _, want := range []string{"PixelPup", "Lv.5", "Moves:", "Perk:", "Nature"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected monster card to contain %q", want)
		}
	}
}

func TestDecisionReport(t *testing.T) {
	dec := ai.Decision{Action: ai.ActionRaiseMedium, Amount: 250, Reasoning: "strong hand pressure"}
	out := DecisionReport("Brash", dec, "Flush", 0.65)

	for _, want := range []string{"Brash decides", "RAISE-MEDIUM", "250 chips", "Flush", "0.65", "strong hand pressure"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected decision report to contain %q", want)
		}
	}
}

func TestDecisionReportFoldOmitsAmount(t *testing.T) {
	dec := ai.Decision{Action: ai.ActionFold, Reasoning: "weak hand"}
	out := DecisionReport("Meek", dec, "High Card", 0.1)

	if !strings.Contains(out, "FOLD") {
		t.Error("Expected decision report to contain FOLD")
	}
	if strings.Contains(out, "chips") {
		t.Error("A fold commits nothing; no chip amount should render")
	}
}

func TestBattleTranscript(t *testing.T) {
	res := &battle.Result{
		Outcome:    battle.OutcomePlayerWin,
		Turns:      2,
		ExpAwarded: 120,
		Events: []battle.Event{
			{Type: battle.EventBattleStart, Message: "PixelPup challenges ByteBird"},
			{Type: battle.EventMoveUsed, Turn: 1, Side: "player", Message: "PixelPup used Tackle"},
			{Type: battle.EventMoveUsed, Turn: 1, Side: "opponent", Message: "ByteBird used Peck"},
			{Type: battle.EventFaint, Turn: 2, Message: "ByteBird fainted"},
			{Type: battle.EventBattleEnd, Turn: 2, Message: "PixelPup wins the battle"},
		},
	}

	out := BattleTranscript(res)

	ordered := []string{
		"PixelPup challenges ByteBird",
		"PixelPup used Tackle",
		"ByteBird used Peck",
		"ByteBird fainted",
		"PixelPup wins the battle",
		"2 turns, 120 exp awarded",
	}
	last := -1
	for _, want := range ordered {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("Expected transcript to contain %q", want)
		}
		if idx < last {
			t.Errorf("Expected %q to render after previous event", want)
		}
		last = idx
	}
}

func TestBattleTranscriptMatchesRealFight(t *testing.T) {
	db, err := monster.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	player, _ := db.Spawn("PixelPup", 5)
	opponent, _ := db.Spawn("PixelPup", 5)

	res, err := battle.NewEngineSeeded(42, quietLogger()).Fight(player, opponent)
	if err != nil {
		t.Fatalf("Fight() error: %v", err)
	}

	out := BattleTranscript(res)
	if !strings.Contains(out, "exp awarded") {
		t.Error("Expected transcript footer")
	}
	if got := strings.Count(out, "\n"); got < len(res.Events) {
		t.Errorf("Expected at least %d lines, got %d", len(res.Events), got)
	}
}

func TestDecisionStatsTable(t *testing.T) {
	tally := &simulator.ActionTally{
		Preset: "Brash",
		Trials: 10,
		Folds:  2,
		Checks: 1,
		Calls:  3,
		Raises: 4,
		AllIns: 1,
	}
	for _, size := range []float64{100, 150, 200, 250} {
		tally.RaiseSizes.Add(size)
	}

	out := DecisionStatsTable(tally)

	for _, want := range []string{
		"Decision profile: Brash",
		"10 trials",
		"( 20.0%)",
		"( 40.0%)",
		"all-in",
		"mean 175.0, median 175.0, p90 235.0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected stats table to contain %q", want)
		}
	}
}

func TestBattleStatsTable(t *testing.T) {
	tally := &simulator.BattleTally{
		Trials:       4,
		PlayerWins:   3,
		OpponentWins: 1,
	}
	for _, turns := range []float64{4, 6, 6, 8} {
		tally.Turns.Add(turns)
	}

	out := BattleStatsTable(tally)

	for _, want := range []string{
		"Battle results",
		"4 trials",
		"( 75.0%)",
		"( 25.0%)",
		"mean 6.0 (95% CI 4.4-7.6), median 6.0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected battle stats to contain %q", want)
		}
	}
}
