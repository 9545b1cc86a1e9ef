package arena

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gameaday/pokermon/internal/ai"
)

// newTestArena wires a server to an httptest listener. The returned server
// has its registry loop running but does not own the listener.
func newTestArena(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	svc := NewService(testDB(t), 4321, 5*time.Second, nil, quietLogger())
	srv := NewServer("127.0.0.1:0", svc, quietLogger())
	go srv.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWebSocket)
	mux.HandleFunc("/health", srv.handleHealth)
	ts := httptest.NewServer(mux)

	t.Cleanup(func() {
		srv.Shutdown(context.Background())
		ts.Close()
	})
	return srv, ts
}

func dialArena(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// roundTrip sends one request envelope and reads the next reply.
func roundTrip(t *testing.T, conn *websocket.Conn, msgType MessageType, requestID string, payload interface{}) *Message {
	t.Helper()

	msg, err := NewMessage(msgType, payload)
	require.NoError(t, err)
	msg.RequestID = requestID
	require.NoError(t, conn.WriteJSON(msg))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	return &reply
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	srv, ts := newTestArena(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var status healthStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, len(ai.Presets()), status.Presets)
	assert.Equal(t, srv.svc.db.Count(), status.Species)
	assert.Zero(t, status.Connections)
}

func TestDecisionRoundTrip(t *testing.T) {
	t.Parallel()

	_, ts := newTestArena(t)
	conn := dialArena(t, ts)

	reply := roundTrip(t, conn, MessageTypeDecisionRequest, "req-1", DecisionRequestData{
		Preset:           "Confident",
		CurrentBet:       50,
		PotSize:          150,
		PlayersRemaining: 4,
		BettingRound:     ai.RoundTurn,
		ChipRatio:        1,
		HandScore:        7150,
		Chips:            500,
		Seed:             int64Ptr(9),
	})

	require.Equal(t, MessageTypeDecisionResponse, reply.Type)
	assert.Equal(t, "req-1", reply.RequestID)

	var data DecisionResponseData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.NotEmpty(t, data.Action)
	assert.Equal(t, "Full House", data.HandTier)
	assert.InDelta(t, 0.75, data.Strength, 1e-9)
	assert.Equal(t, int64(9), data.Seed)
}

func TestBattleRoundTrip(t *testing.T) {
	t.Parallel()

	_, ts := newTestArena(t)
	conn := dialArena(t, ts)

	reply := roundTrip(t, conn, MessageTypeBattleRequest, "req-2", BattleRequestData{
		Player:    "PixelPup",
		Opponent:  "PixelPup",
		HandScore: 10500,
		Seed:      int64Ptr(3),
	})

	require.Equal(t, MessageTypeBattleResponse, reply.Type)
	assert.Equal(t, "req-2", reply.RequestID)

	var data BattleResponseData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.Equal(t, "player-win", data.Outcome)
	assert.Equal(t, 4, data.Turns)
	assert.Equal(t, 50, data.HandBonus)
	require.NotEmpty(t, data.Events)
	assert.Equal(t, "battle_end", string(data.Events[len(data.Events)-1].Type))
}

func TestPresetListRoundTrip(t *testing.T) {
	t.Parallel()

	_, ts := newTestArena(t)
	conn := dialArena(t, ts)

	reply := roundTrip(t, conn, MessageTypePresetList, "req-3", nil)

	require.Equal(t, MessageTypePresets, reply.Type)
	assert.Equal(t, "req-3", reply.RequestID)

	var data PresetListData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	require.Len(t, data.Presets, len(ai.Presets()))

	names := make(map[string]bool, len(data.Presets))
	for _, p := range data.Presets {
		names[p.Name] = true
	}
	assert.True(t, names["Foolhardy"])
	assert.True(t, names["Meek"])
}

func TestBestiaryRoundTrip(t *testing.T) {
	t.Parallel()

	srv, ts := newTestArena(t)
	conn := dialArena(t, ts)

	reply := roundTrip(t, conn, MessageTypeBestiaryList, "req-4", nil)

	require.Equal(t, MessageTypeBestiary, reply.Type)
	assert.Equal(t, "req-4", reply.RequestID)

	var data BestiaryListData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	require.Len(t, data.Species, srv.svc.db.Count())
	for _, sp := range data.Species {
		assert.NotEmpty(t, sp.Name)
		assert.NotEmpty(t, sp.Rarity)
		assert.NotEmpty(t, sp.Abilities)
	}
}

func TestUnknownMessageType(t *testing.T) {
	t.Parallel()

	_, ts := newTestArena(t)
	conn := dialArena(t, ts)

	reply := roundTrip(t, conn, MessageType("telemetry"), "req-5", nil)

	require.Equal(t, MessageTypeError, reply.Type)
	assert.Equal(t, "req-5", reply.RequestID)

	var data ErrorData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.Equal(t, "unknown_message_type", data.Code)
	assert.Contains(t, data.Message, "telemetry")
}

func TestMalformedPayload(t *testing.T) {
	t.Parallel()

	_, ts := newTestArena(t)
	conn := dialArena(t, ts)

	msg := &Message{
		Type:      MessageTypeDecisionRequest,
		Data:      json.RawMessage(`{"chips": "all of them"}`),
		Timestamp: time.Now(),
		RequestID: "bad-1",
	}
	require.NoError(t, conn.WriteJSON(msg))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))

	require.Equal(t, MessageTypeError, reply.Type)
	assert.Equal(t, "bad-1", reply.RequestID)

	var data ErrorData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.Equal(t, "invalid_message", data.Code)
}

func TestFailedRequestKeepsConnectionUsable(t *testing.T) {
	t.Parallel()

	_, ts := newTestArena(t)
	conn := dialArena(t, ts)

	req := validDecisionRequest()
	req.Preset = "Zealous"
	reply := roundTrip(t, conn, MessageTypeDecisionRequest, "req-6", req)

	require.Equal(t, MessageTypeError, reply.Type)
	var data ErrorData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.Equal(t, "decision_failed", data.Code)

	// The error must not have torn the connection down.
	reply = roundTrip(t, conn, MessageTypeDecisionRequest, "req-7", validDecisionRequest())
	require.Equal(t, MessageTypeDecisionResponse, reply.Type)
	assert.Equal(t, "req-7", reply.RequestID)
}

func TestRequestsAnsweredInOrder(t *testing.T) {
	t.Parallel()

	_, ts := newTestArena(t)
	conn := dialArena(t, ts)

	first, err := NewMessage(MessageTypeDecisionRequest, validDecisionRequest())
	require.NoError(t, err)
	first.RequestID = "order-a"
	second, err := NewMessage(MessageTypePresetList, nil)
	require.NoError(t, err)
	second.RequestID = "order-b"

	require.NoError(t, conn.WriteJSON(first))
	require.NoError(t, conn.WriteJSON(second))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "order-a", reply.RequestID)
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "order-b", reply.RequestID)
}

func TestConnectionRegistry(t *testing.T) {
	t.Parallel()

	srv, ts := newTestArena(t)

	dialArena(t, ts)
	dialArena(t, ts)

	assert.Eventually(t, func() bool {
		return srv.ConnectionCount() == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestShutdownClosesClients(t *testing.T) {
	t.Parallel()

	srv, ts := newTestArena(t)
	conn := dialArena(t, ts)

	require.Eventually(t, func() bool {
		return srv.ConnectionCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.Zero(t, srv.ConnectionCount())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var reply Message
	assert.Error(t, conn.ReadJSON(&reply))
}
