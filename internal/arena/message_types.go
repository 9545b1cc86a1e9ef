package arena

// MessageType identifies the kind of envelope travelling over a websocket.
type MessageType string

// Wire message types. Requests flow client to server, responses flow back;
// every response carries the request_id of the message that caused it.
const (
	// Client -> Server
	MessageTypeDecisionRequest MessageType = "decision_request"
	MessageTypeBattleRequest   MessageType = "battle_request"
	MessageTypePresetList      MessageType = "preset_list"
	MessageTypeBestiaryList    MessageType = "bestiary_list"

	// Server -> Client
	MessageTypeDecisionResponse MessageType = "decision_response"
	MessageTypeBattleResponse   MessageType = "battle_response"
	MessageTypePresets          MessageType = "presets"
	MessageTypeBestiary         MessageType = "bestiary"
	MessageTypeError            MessageType = "error"
)

// String returns the string representation of the message type.
func (mt MessageType) String() string {
	return string(mt)
}
