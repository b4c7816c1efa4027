// Package server exposes the turn engine over HTTP. A posted script is played
// to the end and stored; stored games can be fetched as JSON or replayed turn
// by turn over a websocket.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/ludo/game"
	"github.com/minaorangina/ludo/protocol"
	"github.com/minaorangina/ludo/store"
	uuid "github.com/satori/go.uuid"
)

func newUpgrader(origins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(origins, r.Header.Get("Origin"))
		},
	}
}

// originAllowed applies the CORS origin list to websocket upgrades. Clients
// that send no Origin header are not browsers and are let through.
func originAllowed(origins []string, origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range origins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

type NewGameRes struct {
	GameID    string   `json:"game_id"`
	Result    []string `json:"result"`
	Completed []string `json:"completed"`
}

type ListGamesRes struct {
	GameIDs []string `json:"game_ids"`
}

// GameServer is a game server
type GameServer struct {
	store    store.GameStore
	config   Config
	upgrader websocket.Upgrader
	http.Server
}

func NewID() string {
	return uuid.NewV4().String()
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(s store.GameStore, config Config) *GameServer {
	g := new(GameServer)

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(g.HandleNewGame))
	router.Handle("/games", http.HandlerFunc(g.HandleListGames))
	router.Handle("/game/", http.HandlerFunc(g.HandleFindGame))
	router.Handle("/ws", http.HandlerFunc(g.HandleWS))

	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	g.store = s
	g.config = config
	g.upgrader = newUpgrader(origins)
	g.Addr = config.Addr()
	g.Handler = handlers.LoggingHandler(log.Writer(), cors(router))

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame plays the posted script and stores the finished game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var script protocol.Script
	err := json.NewDecoder(r.Body).Decode(&script)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if err := protocol.ValidateScript(script); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	gameID := NewID()
	record, err := g.play(gameID, script)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := g.store.AddGame(record); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	completed := []string{}
	for _, q := range record.Completed {
		completed = append(completed, q.String())
	}

	writeJSON(w, http.StatusCreated, NewGameRes{
		GameID:    gameID,
		Result:    record.Result,
		Completed: completed,
	})
}

func (g *GameServer) play(gameID string, script protocol.Script) (store.Record, error) {
	opts := game.Opts{Players: script.Players}
	if g.config.LogTurns {
		opts.Logger = log.New(log.Writer(), "game "+gameID+" ", log.LstdFlags)
	}

	ludo, err := game.New(opts)
	if err != nil {
		return store.Record{}, err
	}

	outcomes, err := ludo.Play(script.Turns)
	if err != nil {
		return store.Record{}, err
	}

	return store.Record{
		ID:        gameID,
		Script:    script,
		Outcomes:  outcomes,
		Result:    ludo.Result(),
		Completed: ludo.Completed(),
	}, nil
}

// HandleListGames lists the IDs of every stored game
func (g *GameServer) HandleListGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, ListGamesRes{GameIDs: g.store.GameIDs()})
}

// HandleFindGame returns a stored game record
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		writeBadRequest(w, "missing game ID")
		return
	}

	record, ok := g.findGame(w, gameID)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// HandleWS replays a stored game's turn outcomes, one message per turn, then
// closes the connection
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vals, ok := query["game_id"]
	if !ok || len(vals) != 1 || vals[0] == "" {
		log.Println("missing game ID")
		writeBadRequest(w, "missing game ID")
		return
	}

	record, ok := g.findGame(w, vals[0])
	if !ok {
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Println(err)
		return
	}
	defer conn.Close()

	for _, outcome := range record.Outcomes {
		if err := conn.WriteJSON(outcome); err != nil {
			log.Printf("replay of %s stopped: %v", record.ID, err)
			return
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete")
	if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
		log.Println(err)
	}
}

func (g *GameServer) findGame(w http.ResponseWriter, gameID string) (store.Record, bool) {
	record, err := g.store.FindGame(gameID)
	if errors.Is(err, store.ErrUnknownGameID) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return store.Record{}, false
	}
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return store.Record{}, false
	}
	return record, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(msg))
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	log.Println(err.Error())
	if err == io.EOF {
		writeBadRequest(w, "Missing body")
		return
	}
	writeBadRequest(w, fmt.Sprintf("could not parse script: %v", err))
}
