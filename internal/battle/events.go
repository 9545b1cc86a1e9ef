package battle

// Side identifies which corner a combatant fights from. The distinction
// matters twice: hand bonuses only apply to the player side, and speed ties
// resolve in the player side's favor.
type Side int

const (
	// SidePlayer is the challenger's corner
	SidePlayer Side = iota
	// SideOpponent is the wild or rival corner
	SideOpponent
)

// String returns the wire name of the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Other returns the opposing corner.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// EventType tags one transcript entry.
type EventType string

// Transcript event types, in the order a fight can produce them.
const (
	EventBattleStart EventType = "battle_start"
	EventMoveUsed    EventType = "move_used"
	EventFaint       EventType = "faint"
	EventTurnCap     EventType = "turn_cap"
	EventBattleEnd   EventType = "battle_end"
)

// Event is one entry in a battle transcript. Only the fields that make
// sense for the type are set: damage numbers ride on move_used, the fallen
// monster on faint, the winner on battle_end.
type Event struct {
	Type    EventType `json:"type"`
	Turn    int       `json:"turn"`
	Side    string    `json:"side,omitempty"`
	Monster string    `json:"monster,omitempty"`
	Move    string    `json:"move,omitempty"`
	Damage  int       `json:"damage,omitempty"`
	HPAfter int       `json:"hp_after,omitempty"`
	Message string    `json:"message"`
}
