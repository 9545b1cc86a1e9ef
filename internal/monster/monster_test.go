package monster

import (
	"strings"
	"testing"
)

func testMonster(t *testing.T, level int) *Monster {
	t.Helper()
	base := BaseStats{HP: 100, Attack: 50, Defense: 40, Speed: 60, Special: 45}
	abilities := []Ability{
		{Name: "Byte Bite", Category: CategoryPhysical, Power: 12},
		{Name: "Static Yip", Category: CategorySpecial, Power: 16},
	}
	m, err := NewMonster("PixelPup", RarityCommon, base, Natures()[0], level,
		Effect{Type: EffectChipBonus, Magnitude: 50}, abilities)
	if err != nil {
		t.Fatalf("NewMonster failed: %v", err)
	}
	return m
}

func TestNewMonsterStartsHealed(t *testing.T) {
	m := testMonster(t, 1)

	if got := m.HP(); got != m.MaxHP() {
		t.Errorf("fresh monster should be at full HP, got %d/%d", got, m.MaxHP())
	}
	if m.IsFainted() {
		t.Error("fresh monster should not be fainted")
	}
	if got := m.Name(); got != "PixelPup" {
		t.Errorf("name should be PixelPup, got %s", got)
	}
	if got := m.Rarity(); got != RarityCommon {
		t.Errorf("rarity should be Common, got %s", got)
	}
	if got := m.Effect().BonusChips(); got != 50 {
		t.Errorf("effect should grant 50 chips, got %d", got)
	}
}

func TestNewMonsterValidation(t *testing.T) {
	base := BaseStats{HP: 100, Attack: 50, Defense: 40, Speed: 60, Special: 45}

	if _, err := NewMonster("", RarityCommon, base, Natures()[0], 1, Effect{}, nil); err == nil {
		t.Error("empty name should be rejected")
	}
	if _, err := NewMonster("   ", RarityCommon, base, Natures()[0], 1, Effect{}, nil); err == nil {
		t.Error("blank name should be rejected")
	}
	if _, err := NewMonster("Ghost", RarityCommon, BaseStats{}, Natures()[0], 1, Effect{}, nil); err == nil {
		t.Error("zeroed stats should be rejected")
	}
	if _, err := NewMonster("Ghost", RarityCommon, base, Natures()[0], 0, Effect{}, nil); err == nil {
		t.Error("level 0 should be rejected")
	}
}

func TestNewMonsterDefaultsToStruggle(t *testing.T) {
	base := BaseStats{HP: 100, Attack: 50, Defense: 40, Speed: 60, Special: 45}
	m, err := NewMonster("Blank", RarityCommon, base, Natures()[0], 1, Effect{}, nil)
	if err != nil {
		t.Fatalf("NewMonster failed: %v", err)
	}

	moves := m.Abilities()
	if len(moves) != 1 {
		t.Fatalf("moveless monster should fall back to one move, got %d", len(moves))
	}
	if moves[0].Name != "Struggle" || moves[0].Category != CategoryPhysical {
		t.Errorf("fallback move should be physical Struggle, got %+v", moves[0])
	}
}

func TestMonsterAbilitiesCopied(t *testing.T) {
	m := testMonster(t, 1)

	moves := m.Abilities()
	moves[0].Name = "Tampered"
	if got := m.Abilities()[0].Name; got != "Byte Bite" {
		t.Errorf("returned move list should be a copy, got %s after mutation", got)
	}

	// The constructor copies its input slice too.
	base := BaseStats{HP: 100, Attack: 50, Defense: 40, Speed: 60, Special: 45}
	input := []Ability{{Name: "Original", Category: CategoryPhysical, Power: 10}}
	m2, err := NewMonster("Holder", RarityCommon, base, Natures()[0], 1, Effect{}, input)
	if err != nil {
		t.Fatalf("NewMonster failed: %v", err)
	}
	input[0].Name = "Swapped"
	if got := m2.Abilities()[0].Name; got != "Original" {
		t.Errorf("constructor should own its move list, got %s after caller mutation", got)
	}
}

func TestTakeDamage(t *testing.T) {
	m := testMonster(t, 1)

	m.TakeDamage(30)
	if got := m.HP(); got != 70 {
		t.Errorf("30 damage on 100 HP should leave 70, got %d", got)
	}

	m.TakeDamage(-10)
	if got := m.HP(); got != 70 {
		t.Errorf("negative damage should be ignored, got %d", got)
	}

	m.TakeDamage(1000)
	if got := m.HP(); got != 0 {
		t.Errorf("overkill should clamp HP to 0, got %d", got)
	}
	if !m.IsFainted() {
		t.Error("monster at 0 HP should be fainted")
	}
}

func TestHealRestoresFullHP(t *testing.T) {
	m := testMonster(t, 1)

	m.TakeDamage(85)
	m.Heal()
	if got := m.HP(); got != m.MaxHP() {
		t.Errorf("heal should restore full HP, got %d/%d", got, m.MaxHP())
	}
	if m.IsFainted() {
		t.Error("healed monster should not be fainted")
	}
}

func TestMonsterString(t *testing.T) {
	m := testMonster(t, 1)
	m.TakeDamage(30)

	got := m.String()
	want := "PixelPup (Common, Lv.1, 70/100 HP)"
	if got != want {
		t.Errorf("String should be %q, got %q", want, got)
	}
}

func TestParseMoveCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    MoveCategory
		wantErr bool
	}{
		{input: "physical", want: CategoryPhysical},
		{input: "Special", want: CategorySpecial},
		{input: " STATUS ", want: CategoryStatus},
		{input: "magical", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMoveCategory(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMoveCategory(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoveCategory(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMoveCategory(%q) should be %s, got %s", tt.input, tt.want, got)
		}
	}

	for c := CategoryPhysical; c <= CategoryStatus; c++ {
		if strings.TrimSpace(c.String()) == "" {
			t.Errorf("category %d should have a name", int(c))
		}
	}
}
