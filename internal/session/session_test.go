package session

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/battle"
	"github.com/Gameaday/pokermon/internal/monster"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testSession(seed int64) *Session {
	return New(Settings{Seed: seed}, quietLogger())
}

func validCtx() ai.GameContext {
	return ai.GameContext{
		CurrentBet:       100,
		PotSize:          100,
		PlayersRemaining: 3,
		BettingRound:     ai.RoundPreflop,
		ChipRatio:        1,
	}
}

func luckCharm(t *testing.T, magnitude int) *monster.Monster {
	t.Helper()
	base := monster.BaseStats{HP: 100, Attack: 50, Defense: 40, Speed: 60, Special: 45}
	m, err := monster.NewMonster("Charm", monster.RarityRare, base, monster.Natures()[0], 5,
		monster.Effect{Type: monster.EffectLuckEnhancement, Magnitude: magnitude}, nil)
	require.NoError(t, err)
	return m
}

func TestAssignPersonality(t *testing.T) {
	s := testSession(1)

	require.NoError(t, s.AssignPersonality(2, "brash"))

	profile, err := s.Profile(2)
	require.NoError(t, err)
	if got := profile.Bravery(); got != 8.5 {
		t.Errorf("Brash bravery should be 8.5, got %.2f", got)
	}

	roster := s.Roster()
	require.Len(t, roster, 1)
	// Lookup is case-insensitive but the roster shows the display name.
	assert.Equal(t, "Brash", roster[0].Preset)
	assert.False(t, roster[0].Human)

	err = s.AssignPersonality(3, "nonexistent")
	assert.ErrorIs(t, err, ai.ErrUnknownPreset)

	err = s.AssignPersonality(-1, "Brash")
	assert.Error(t, err, "negative seat numbers should be rejected")
}

func TestAssignRandomDeterministic(t *testing.T) {
	a, b := testSession(42), testSession(42)

	for seatNum := 1; seatNum <= 4; seatNum++ {
		nameA, err := a.AssignRandom(seatNum)
		require.NoError(t, err)
		nameB, err := b.AssignRandom(seatNum)
		require.NoError(t, err)
		if nameA != nameB {
			t.Fatalf("seat %d diverged between identical seeds: %s vs %s", seatNum, nameA, nameB)
		}
	}
}

func TestHumanSeatHasNoProfile(t *testing.T) {
	s := testSession(1)
	require.NoError(t, s.MarkHuman(1))

	_, err := s.Profile(1)
	assert.ErrorIs(t, err, ErrHumanSeat)

	_, err = s.DecideFor(1, validCtx(), 0.5, 500)
	assert.ErrorIs(t, err, ErrHumanSeat)

	// Re-assigning turns the seat back into an AI seat.
	require.NoError(t, s.AssignPersonality(1, "Meek"))
	_, err = s.Profile(1)
	assert.NoError(t, err)
}

func TestDecideForRejectsBadCalls(t *testing.T) {
	s := testSession(1)
	require.NoError(t, s.AssignPersonality(1, "Happy"))

	_, err := s.DecideFor(9, validCtx(), 0.5, 500)
	assert.ErrorIs(t, err, ErrUnknownSeat)

	_, err = s.DecideFor(1, validCtx(), 0.5, -100)
	assert.ErrorIs(t, err, ErrNegativeChips)

	// A zero stack is not corrupted state; the engine handles it.
	dec, err := s.DecideFor(1, validCtx(), 0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, ai.ActionCall, dec.Action)
	assert.Equal(t, 100, dec.Amount)
}

func TestDecideForMatchesSeededEngine(t *testing.T) {
	const seed, seatNum = 7, 3
	s := testSession(seed)
	require.NoError(t, s.AssignPersonality(seatNum, "Foolhardy"))

	profile, err := ai.ProfileFor("Foolhardy")
	require.NoError(t, err)
	engine := ai.NewEngineSeeded(seed + seatNum)

	for i := 0; i < 10; i++ {
		strength := float64(i) / 10
		want, err := engine.Decide(profile, validCtx(), strength, 500)
		require.NoError(t, err)
		got, err := s.DecideFor(seatNum, validCtx(), strength, 500)
		require.NoError(t, err)
		if got != want {
			t.Fatalf("decision %d diverged from seat engine: %+v vs %+v", i, got, want)
		}
	}
}

func TestDecideForAppliesLuck(t *testing.T) {
	// Brainy perceives exactly what it is given: confidence 4.5 adds no
	// inflation and adaptability 7.25 adds no wobble. Its raise threshold
	// against this context is 0.5625, so 0.35 calls on its own and a 75%
	// luck boost (0.6125) raises.
	plain := testSession(5)
	require.NoError(t, plain.AssignPersonality(1, "Brainy"))
	dec, err := plain.DecideFor(1, validCtx(), 0.35, 500)
	require.NoError(t, err)
	assert.Equal(t, ai.ActionCall, dec.Action)

	lucky := testSession(5)
	require.NoError(t, lucky.AssignPersonality(1, "Brainy"))
	require.NoError(t, lucky.AttachMonster(1, luckCharm(t, 75)))
	dec, err = lucky.DecideFor(1, validCtx(), 0.35, 500)
	require.NoError(t, err)
	assert.True(t, dec.Action.IsRaise(), "luck-boosted strength should cross the raise threshold, got %s", dec.Action)
}

func TestAttachMonster(t *testing.T) {
	s := testSession(1)
	require.NoError(t, s.MarkHuman(1))

	charm := luckCharm(t, 10)
	require.NoError(t, s.AttachMonster(1, charm))

	got, err := s.MonsterOf(1)
	require.NoError(t, err)
	assert.Same(t, charm, got)

	_, err = s.MonsterOf(2)
	assert.ErrorIs(t, err, ErrUnknownSeat)

	require.NoError(t, s.MarkHuman(2))
	_, err = s.MonsterOf(2)
	assert.ErrorIs(t, err, ErrNoMonster)

	assert.Error(t, s.AttachMonster(1, nil), "nil monster should be rejected")
	assert.ErrorIs(t, s.AttachMonster(9, charm), ErrUnknownSeat)
}

func TestBuyInAppliesChipBonus(t *testing.T) {
	s := New(Settings{Seed: 1, StartingChips: 1000}, quietLogger())
	require.NoError(t, s.MarkHuman(1))
	require.NoError(t, s.AssignPersonality(2, "Humble"))

	base := monster.BaseStats{HP: 150, Attack: 64, Defense: 55, Speed: 70, Special: 66}
	fox, err := monster.NewMonster("FireFox.exe", monster.RarityUncommon, base, monster.Natures()[0], 5,
		monster.Effect{Type: monster.EffectChipBonus, Magnitude: 100}, nil)
	require.NoError(t, err)
	require.NoError(t, s.AttachMonster(1, fox))

	buyIn, err := s.BuyIn(1)
	require.NoError(t, err)
	assert.Equal(t, 1100, buyIn)

	// No monster means the plain stake.
	buyIn, err = s.BuyIn(2)
	require.NoError(t, err)
	assert.Equal(t, 1000, buyIn)

	// A non-chip effect grants nothing at buy-in.
	require.NoError(t, s.AttachMonster(2, luckCharm(t, 25)))
	buyIn, err = s.BuyIn(2)
	require.NoError(t, err)
	assert.Equal(t, 1000, buyIn)
}

func TestApplyBattleResult(t *testing.T) {
	s := testSession(1)
	require.NoError(t, s.MarkHuman(1))

	base := monster.BaseStats{HP: 100, Attack: 52, Defense: 45, Speed: 60, Special: 48}
	pup, err := monster.NewMonster("PixelPup", monster.RarityCommon, base, monster.Natures()[0], 5,
		monster.Effect{}, nil)
	require.NoError(t, err)
	require.NoError(t, s.AttachMonster(1, pup))

	// 250 exp on top of level 5's lifetime 300 lands exactly on level 6.
	gained, err := s.ApplyBattleResult(1, &battle.Result{Outcome: battle.OutcomePlayerWin, ExpAwarded: 250})
	require.NoError(t, err)
	assert.Equal(t, 1, gained)
	assert.Equal(t, 6, pup.Stats().Level())

	// Draws and losses change nothing.
	before := pup.Stats().Experience()
	gained, err = s.ApplyBattleResult(1, &battle.Result{Outcome: battle.OutcomeDraw, ExpAwarded: 100})
	require.NoError(t, err)
	assert.Zero(t, gained)
	gained, err = s.ApplyBattleResult(1, &battle.Result{Outcome: battle.OutcomeOpponentWin, ExpAwarded: 100})
	require.NoError(t, err)
	assert.Zero(t, gained)
	assert.Equal(t, before, pup.Stats().Experience())

	_, err = s.ApplyBattleResult(1, nil)
	assert.Error(t, err)

	require.NoError(t, s.AssignPersonality(2, "Meek"))
	_, err = s.ApplyBattleResult(2, &battle.Result{Outcome: battle.OutcomePlayerWin, ExpAwarded: 50})
	assert.ErrorIs(t, err, ErrNoMonster)
}

func TestRosterOrderAndClear(t *testing.T) {
	s := testSession(1)
	require.NoError(t, s.AssignPersonality(3, "Meek"))
	require.NoError(t, s.MarkHuman(1))
	require.NoError(t, s.AssignPersonality(2, "Brash"))

	roster := s.Roster()
	require.Len(t, roster, 3)
	for i, want := range []int{1, 2, 3} {
		if roster[i].Number != want {
			t.Errorf("roster slot %d should be seat %d, got %d", i, want, roster[i].Number)
		}
	}
	assert.True(t, roster[0].Human)
	assert.Equal(t, "Brash", roster[1].Preset)

	s.Clear()
	assert.Empty(t, s.Roster())
	_, err := s.Profile(2)
	assert.ErrorIs(t, err, ErrUnknownSeat)
}

func TestSettingsDefaults(t *testing.T) {
	s := New(Settings{}, nil)
	if s.Seed() == 0 {
		t.Error("zero seed should be replaced with a clock-derived one")
	}
	assert.Equal(t, DefaultStartingChips, s.StartingChips())
}
