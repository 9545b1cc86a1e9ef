package arena

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/battle"
	"github.com/Gameaday/pokermon/internal/monster"
)

// Message is the wire envelope for all websocket traffic. Data carries the
// type-specific payload; RequestID lets a client pair a response with the
// request that caused it.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"request_id,omitempty"`
}

// NewMessage creates a message of the given type with a marshaled payload.
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
		rawData = bytes
	}

	return &Message{
		Type:      msgType,
		Data:      rawData,
		Timestamp: time.Now(),
	}, nil
}

// TraitsPayload is the wire form of a personality trait vector. All values
// use the 0-10 scale.
type TraitsPayload struct {
	Courage      float64 `json:"courage"`
	Gullibility  float64 `json:"gullibility"`
	Guile        float64 `json:"guile"`
	Confidence   float64 `json:"confidence"`
	Caution      float64 `json:"caution"`
	Empathy      float64 `json:"empathy"`
	Timidness    float64 `json:"timidness"`
	Patience     float64 `json:"patience"`
	Ambition     float64 `json:"ambition"`
	Intelligence float64 `json:"intelligence"`
}

// Vector converts the payload to the engine's trait type.
func (p TraitsPayload) Vector() ai.TraitVector {
	return ai.TraitVector{
		Courage:      p.Courage,
		Gullibility:  p.Gullibility,
		Guile:        p.Guile,
		Confidence:   p.Confidence,
		Caution:      p.Caution,
		Empathy:      p.Empathy,
		Timidness:    p.Timidness,
		Patience:     p.Patience,
		Ambition:     p.Ambition,
		Intelligence: p.Intelligence,
	}
}

func traitsPayloadFrom(v ai.TraitVector) TraitsPayload {
	return TraitsPayload{
		Courage:      v.Courage,
		Gullibility:  v.Gullibility,
		Guile:        v.Guile,
		Confidence:   v.Confidence,
		Caution:      v.Caution,
		Empathy:      v.Empathy,
		Timidness:    v.Timidness,
		Patience:     v.Patience,
		Ambition:     v.Ambition,
		Intelligence: v.Intelligence,
	}
}

// DecisionRequestData asks for one betting decision. Exactly one of Preset
// or Traits must be set. HandScore is the raw evaluator score; the server
// converts it to the [0, 1] strength scalar itself so clients never have to.
type DecisionRequestData struct {
	Preset           string         `json:"preset,omitempty"`
	Traits           *TraitsPayload `json:"traits,omitempty"`
	CurrentBet       int            `json:"current_bet"`
	PotSize          int            `json:"pot_size"`
	PlayersRemaining int            `json:"players_remaining"`
	BettingRound     int            `json:"betting_round"`
	LastToAct        bool           `json:"last_to_act,omitempty"`
	ChipRatio        float64        `json:"chip_ratio,omitempty"`
	HandScore        int            `json:"hand_score"`
	Chips            int            `json:"chips"`
	Seed             *int64         `json:"seed,omitempty"`
}

// DecisionResponseData is the engine's answer. Seed echoes the generator
// seed actually used so any decision can be replayed offline.
type DecisionResponseData struct {
	Preset    string  `json:"preset,omitempty"`
	Action    string  `json:"action"`
	Amount    int     `json:"amount"`
	Reasoning string  `json:"reasoning"`
	HandTier  string  `json:"hand_tier"`
	Strength  float64 `json:"strength"`
	Seed      int64   `json:"seed"`
}

// BattleRequestData stages a fight between two species from the bestiary.
// Levels default server-side when left at zero; HandScore translates into
// the player side's damage bonus.
type BattleRequestData struct {
	Player        string `json:"player"`
	PlayerLevel   int    `json:"player_level,omitempty"`
	Opponent      string `json:"opponent"`
	OpponentLevel int    `json:"opponent_level,omitempty"`
	HandScore     int    `json:"hand_score,omitempty"`
	TurnCap       int    `json:"turn_cap,omitempty"`
	Seed          *int64 `json:"seed,omitempty"`
}

// BattleResponseData reports a finished fight along with its full
// transcript.
type BattleResponseData struct {
	Outcome    string         `json:"outcome"`
	Winner     string         `json:"winner,omitempty"`
	Turns      int            `json:"turns"`
	ExpAwarded int            `json:"exp_awarded"`
	HandBonus  int            `json:"hand_bonus_pct"`
	Seed       int64          `json:"seed"`
	Events     []battle.Event `json:"events"`
}

// PresetInfo describes one personality preset in a preset listing.
type PresetInfo struct {
	Name   string        `json:"name"`
	Traits TraitsPayload `json:"traits"`
	Rating float64       `json:"rating"`
}

// PresetListData is the payload of a presets response.
type PresetListData struct {
	Presets []PresetInfo `json:"presets"`
}

// StatsPayload is the wire form of a species' base stats.
type StatsPayload struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
	Special int `json:"special"`
}

// EffectPayload is the wire form of a species' table effect.
type EffectPayload struct {
	Type      string `json:"type"`
	Magnitude int    `json:"magnitude"`
}

// AbilityPayload is the wire form of one battle move.
type AbilityPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Power    int    `json:"power"`
}

// SpeciesInfo describes one bestiary entry in a bestiary listing.
type SpeciesInfo struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Rarity      string           `json:"rarity"`
	Nature      string           `json:"nature"`
	Stats       StatsPayload     `json:"stats"`
	Effect      EffectPayload    `json:"effect"`
	Abilities   []AbilityPayload `json:"abilities"`
}

// BestiaryListData is the payload of a bestiary response.
type BestiaryListData struct {
	Species []SpeciesInfo `json:"species"`
}

// ErrorData reports a failed request back to the client.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func presetInfoFrom(p ai.Preset) PresetInfo {
	info := PresetInfo{
		Name:   p.Name,
		Traits: traitsPayloadFrom(p.Traits),
	}
	if profile, err := ai.NewBehaviorProfile(p.Traits); err == nil {
		info.Rating = profile.Rating()
	}
	return info
}

func speciesInfoFrom(d monster.Definition) SpeciesInfo {
	info := SpeciesInfo{
		Name:        d.Name,
		Description: d.Description,
		Rarity:      d.Rarity.String(),
		Nature:      d.Nature.Name,
		Stats: StatsPayload{
			HP:      d.Base.HP,
			Attack:  d.Base.Attack,
			Defense: d.Base.Defense,
			Speed:   d.Base.Speed,
			Special: d.Base.Special,
		},
		Effect: EffectPayload{
			Type:      d.Effect.Type.String(),
			Magnitude: d.Effect.Magnitude,
		},
		Abilities: make([]AbilityPayload, 0, len(d.Abilities)),
	}
	for _, a := range d.Abilities {
		info.Abilities = append(info.Abilities, AbilityPayload{
			Name:     a.Name,
			Category: a.Category.String(),
			Power:    a.Power,
		})
	}
	return info
}
