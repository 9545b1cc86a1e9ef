package battle

import (
	rand "math/rand/v2"

	"github.com/Gameaday/pokermon/internal/monster"
)

// SelectionPolicy picks the ability a monster uses on its turn. Policies
// see both combatants and may roll on the shared generator. The move list a
// policy draws from is never empty.
type SelectionPolicy func(turn int, self, target *monster.Monster, rng *rand.Rand) monster.Ability

// BasicAttack always leads with the first listed move, the species' basic
// attack. It is the default for both corners.
func BasicAttack(turn int, self, target *monster.Monster, rng *rand.Rand) monster.Ability {
	return self.Abilities()[0]
}

// RandomAbility picks uniformly across the move list.
func RandomAbility(turn int, self, target *monster.Monster, rng *rand.Rand) monster.Ability {
	moves := self.Abilities()
	return moves[rng.IntN(len(moves))]
}

// HardestHitter picks the move promising the most damage against the
// current target, before variance. Status moves only come up when nothing
// on the list can deal damage.
func HardestHitter(turn int, self, target *monster.Monster, rng *rand.Rand) monster.Ability {
	moves := self.Abilities()
	best, bestScore := moves[0], -1
	for _, move := range moves {
		var score int
		switch move.Category {
		case monster.CategoryPhysical:
			score = self.Stats().Attack() + move.Power - target.Stats().Defense()
		case monster.CategorySpecial:
			score = self.Stats().Special() + move.Power - target.Stats().Special()
		default:
			continue
		}
		if score > bestScore {
			best, bestScore = move, score
		}
	}
	return best
}
