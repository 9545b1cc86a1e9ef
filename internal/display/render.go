// Package display renders engine output for the terminal: preset and
// bestiary tables, decision reports, battle transcripts and simulation
// summaries. Everything returns a plain string; callers own the writer.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/battle"
	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/simulator"
)

// PresetTable renders the personality roster with raw traits and the
// derived table rating.
func PresetTable(presets []ai.Preset) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Personality Presets"))
	b.WriteString("\n\n")
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-14s %4s %4s %4s %4s %4s %4s %4s %4s %4s %4s  %6s",
		"NAME", "CRG", "GUL", "GLE", "CNF", "CTN", "EMP", "TMD", "PAT", "AMB", "INT", "RATING")))
	b.WriteString("\n")

	for _, p := range presets {
		t := p.Traits
		b.WriteString(fmt.Sprintf("%-14s %4.1f %4.1f %4.1f %4.1f %4.1f %4.1f %4.1f %4.1f %4.1f %4.1f",
			p.Name, t.Courage, t.Gullibility, t.Guile, t.Confidence, t.Caution,
			t.Empathy, t.Timidness, t.Patience, t.Ambition, t.Intelligence))
		if profile, err := ai.NewBehaviorProfile(t); err == nil {
			b.WriteString(fmt.Sprintf("  %6.2f", profile.Rating()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// BestiaryTable renders the species roster with base stats and table
// effects, rarity colored by tier.
func BestiaryTable(defs []monster.Definition) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Bestiary"))
	b.WriteString("\n\n")
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-16s %-10s %-10s %4s %4s %4s %4s %4s  %s",
		"NAME", "RARITY", "NATURE", "HP", "ATK", "DEF", "SPD", "SPC", "EFFECT")))
	b.WriteString("\n")

	for _, d := range defs {
		tier := d.Rarity.String()
		b.WriteString(fmt.Sprintf("%-16s %s %-10s %4d %4d %4d %4d %4d  %s\n",
			d.Name,
			rarityStyle(tier).Render(fmt.Sprintf("%-10s", tier)),
			d.Nature.Name,
			d.Base.HP, d.Base.Attack, d.Base.Defense, d.Base.Speed, d.Base.Special,
			formatEffect(d.Effect)))
	}
	return b.String()
}

// MonsterCard renders one spawned monster: identity line, live stats,
// moves and the poker perk.
func MonsterCard(m *monster.Monster) string {
	var b strings.Builder
	stats := m.Stats()

	b.WriteString(rarityStyle(m.Rarity().String()).Render(m.String()))
	b.WriteString("\n")
	if desc := m.Description(); desc != "" {
		b.WriteString(InfoStyle.Render(desc))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Nature %s  Exp %d (next level in %d)\n",
		stats.Nature().Name, stats.Experience(), stats.ExpToNextLevel()))
	b.WriteString(fmt.Sprintf("ATK %d  DEF %d  SPD %d  SPC %d\n",
		stats.Attack(), stats.Defense(), stats.Speed(), stats.Special()))

	moves := make([]string, 0, len(m.Abilities()))
	for _, a := range m.Abilities() {
		moves = append(moves, fmt.Sprintf("%s (%s %d)", a.Name, a.Category, a.Power))
	}
	b.WriteString("Moves: " + strings.Join(moves, ", ") + "\n")
	b.WriteString("Perk: " + formatEffect(m.Effect()) + "\n")
	return b.String()
}

// DecisionReport renders one betting decision with its hand context.
func DecisionReport(name string, dec ai.Decision, tier string, handStrength float64) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(name + " decides"))
	b.WriteString("\n\n")

	line := actionStyle(dec.Action).Render(strings.ToUpper(dec.Action.String()))
	if dec.Amount > 0 {
		line += fmt.Sprintf(" for %d chips", dec.Amount)
	}
	b.WriteString(line + "\n")
	b.WriteString(fmt.Sprintf("Hand: %s (strength %.2f)\n", tier, handStrength))
	b.WriteString(InfoStyle.Render("Reasoning: "+dec.Reasoning) + "\n")
	return b.String()
}

// BattleTranscript renders a fight's event log with the result footer.
func BattleTranscript(res *battle.Result) string {
	var b strings.Builder
	for _, ev := range res.Events {
		switch ev.Type {
		case battle.EventBattleStart:
			b.WriteString(TitleStyle.Render(ev.Message))
		case battle.EventMoveUsed:
			b.WriteString(fmt.Sprintf("%2d  %s", ev.Turn, sideStyle(ev.Side).Render(ev.Message)))
		case battle.EventFaint:
			b.WriteString(fmt.Sprintf("%2d  %s", ev.Turn, WarningStyle.Render(ev.Message)))
		case battle.EventTurnCap:
			b.WriteString(InfoStyle.Render(ev.Message))
		case battle.EventBattleEnd:
			b.WriteString(outcomeStyle(res.Outcome).Render(ev.Message))
		default:
			b.WriteString(ev.Message)
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\n%d turns, %d exp awarded\n", res.Turns, res.ExpAwarded))
	return b.String()
}

// DecisionStatsTable renders a decision simulation tally.
func DecisionStatsTable(t *simulator.ActionTally) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Decision profile: " + t.Preset))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d trials", t.Trials)))
	b.WriteString("\n")
	b.WriteString(statLine("fold", t.Folds, t.Trials, ErrorStyle))
	b.WriteString(statLine("check", t.Checks, t.Trials, SuccessStyle))
	b.WriteString(statLine("call", t.Calls, t.Trials, SuccessStyle))
	b.WriteString(statLine("raise", t.Raises, t.Trials, WarningStyle))
	if t.AllIns > 0 {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("%d of those raises were all-in", t.AllIns)))
		b.WriteString("\n")
	}
	if t.Raises > 0 {
		b.WriteString(fmt.Sprintf("raise size: mean %.1f, median %.1f, p90 %.1f\n",
			t.RaiseSizes.Mean(), t.RaiseSizes.Median(), t.RaiseSizes.Percentile(0.9)))
	}
	return b.String()
}

// BattleStatsTable renders a battle simulation tally.
func BattleStatsTable(t *simulator.BattleTally) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Battle results"))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d trials", t.Trials)))
	b.WriteString("\n")
	b.WriteString(statLine("player", t.PlayerWins, t.Trials, PlayerStyle))
	b.WriteString(statLine("foe", t.OpponentWins, t.Trials, OpponentStyle))
	b.WriteString(statLine("draw", t.Draws, t.Trials, InfoStyle))
	if t.Turns.Count > 0 {
		lo, hi := t.Turns.ConfidenceInterval95()
		b.WriteString(fmt.Sprintf("turns: mean %.1f (95%% CI %.1f-%.1f), median %.1f\n",
			t.Turns.Mean(), lo, hi, t.Turns.Median()))
	}
	return b.String()
}

func formatEffect(e monster.Effect) string {
	if e.Magnitude == 0 {
		return e.Type.String()
	}
	return fmt.Sprintf("%s %d", e.Type, e.Magnitude)
}

func statLine(label string, count, trials int, style lipgloss.Style) string {
	pct := 0.0
	if trials > 0 {
		pct = float64(count) / float64(trials) * 100
	}
	return fmt.Sprintf("%s %6d  (%5.1f%%)\n", style.Render(fmt.Sprintf("%-6s", label)), count, pct)
}

func actionStyle(a ai.Action) lipgloss.Style {
	switch {
	case a == ai.ActionFold:
		return ErrorStyle
	case a.IsRaise():
		return WarningStyle
	default:
		return SuccessStyle
	}
}

func sideStyle(side string) lipgloss.Style {
	if side == battle.SidePlayer.String() {
		return PlayerStyle
	}
	return OpponentStyle
}

func outcomeStyle(o battle.Outcome) lipgloss.Style {
	switch o {
	case battle.OutcomePlayerWin:
		return SuccessStyle
	case battle.OutcomeOpponentWin:
		return ErrorStyle
	default:
		return InfoStyle
	}
}
