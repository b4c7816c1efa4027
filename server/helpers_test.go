package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/ludo/board"
	utils "github.com/minaorangina/ludo/internal"
	"github.com/minaorangina/ludo/protocol"
	"github.com/minaorangina/ludo/store"
)

type failingStore struct {
	*store.InMemoryGameStore
}

func (s failingStore) AddGame(record store.Record) error {
	return io.ErrClosedPipe
}

func newBasicServer() *GameServer {
	return NewServer(store.NewInMemoryGameStore(), DefaultConfig())
}

func goldenScript() protocol.Script {
	return protocol.Script{
		Players: []board.Quadrant{board.A, board.B},
		Turns: []protocol.Turn{
			{Player: board.A, Roll: 6},
			{Player: board.A, Roll: 5},
			{Player: board.B, Roll: 6},
			{Player: board.B, Roll: 3},
		},
	}
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

// mustCreateGame posts a script and returns the new game's id
func mustCreateGame(t *testing.T, server http.Handler, script protocol.Script) NewGameRes {
	t.Helper()

	response := httptest.NewRecorder()
	server.ServeHTTP(response, newCreateGameRequest(mustMakeJson(t, script)))
	utils.AssertStatus(t, response.Code, http.StatusCreated)

	var got NewGameRes
	err := json.Unmarshal(response.Body.Bytes(), &got)
	if err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)

	if err != nil {
		code := 0
		var body []byte
		if resp != nil {
			code = resp.StatusCode
			body, _ = io.ReadAll(resp.Body)
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, code, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}
