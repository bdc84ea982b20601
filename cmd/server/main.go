// Package main implements a Battlesnake API server backed by the
// bounded-depth minimax move-decision core.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/basiliskbot/basilisk/budget"
	"github.com/basiliskbot/basilisk/diagnostics"
	"github.com/basiliskbot/basilisk/game"
	"github.com/basiliskbot/basilisk/heuristic"
	"github.com/basiliskbot/basilisk/rules"
	"github.com/basiliskbot/basilisk/search"
)

// Battlesnake API request/response types, matching the external HTTP
// envelope: /, /start, /move, and /end.

type BattlesnakeInfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version"`
}

type GameRequest struct {
	Game  Game        `json:"game"`
	Turn  int         `json:"turn"`
	Board Board       `json:"board"`
	You   Battlesnake `json:"you"`
}

type Game struct {
	ID      string  `json:"id"`
	Ruleset Ruleset `json:"ruleset"`
	Timeout int     `json:"timeout"`
}

type Ruleset struct {
	Name     string          `json:"name"`
	Version  string          `json:"version"`
	Settings RulesetSettings `json:"settings"`
}

type RulesetSettings struct {
	FoodSpawnChance     int `json:"foodSpawnChance"`
	MinimumFood         int `json:"minimumFood"`
	HazardDamagePerTurn int `json:"hazardDamagePerTurn"`
}

type Board struct {
	Height  int           `json:"height"`
	Width   int           `json:"width"`
	Food    []Coord       `json:"food"`
	Hazards []Coord       `json:"hazards"`
	Snakes  []Battlesnake `json:"snakes"`
}

type Battlesnake struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Body   []Coord `json:"body"`
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type MoveResponse struct {
	Move  string `json:"move"`
	Shout string `json:"shout,omitempty"`
}

// Server wires the move-decision core to the HTTP transport: it holds
// the time-budget store, the diagnostics recorder, and the set of
// connected spectators.
type Server struct {
	budgets *budget.Store
	diag    *diagnostics.Recorder
	diagLog *slog.Logger

	upgrader websocket.Upgrader
	specMu   sync.Mutex
	spec     map[*websocket.Conn]struct{}
}

func NewServer(moveTimeout time.Duration, diagOutDir string) *Server {
	diagLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	var rec *diagnostics.Recorder
	if diagOutDir != "" {
		rec = diagnostics.NewRecorder(diagOutDir, 200, diagLog)
	}
	return &Server{
		budgets:  budget.NewStoreWithFallback(moveTimeout),
		diag:     rec,
		diagLog:  diagLog,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		spec:     make(map[*websocket.Conn]struct{}),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	response := BattlesnakeInfoResponse{
		APIVersion: "1",
		Author:     "basilisk",
		Color:      "#1f6feb",
		Head:       "default",
		Tail:       "default",
		Version:    "1.0.0",
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.budgets.Start(req.Game.ID, req.Game.Timeout)
	log.Printf("game started: %s turn=%d you=%s timeout=%dms", req.Game.ID, req.Turn, req.You.Name, req.Game.Timeout)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := convertToGameState(&req)
	if !s.budgets.Has(req.Game.ID) && req.Game.Timeout > 0 {
		// The budget store never saw a "start" for this game (e.g. a
		// restarted process); derive one from this request instead of
		// falling all the way back to the global default.
		s.budgets.Start(req.Game.ID, req.Game.Timeout)
	}
	deadline := start.Add(s.budgets.Lookup(req.Game.ID))

	profile := heuristic.SelectProfile(state)

	safe := rules.SafeMoves(state)
	depth0 := make(map[game.Direction]float64, len(safe))
	for _, move := range safe {
		depth0[move] = heuristic.Evaluate(rules.ApplyMoveFrozen(state, move), profile).Score
	}

	maxDepth := search.DynamicDepth(state)
	decision := search.ChooseMove(state, maxDepth, profile, depth0, deadline)
	breakdown := heuristic.Evaluate(rules.ApplyMoveFrozen(state, decision.Move), profile)

	elapsed := time.Since(start)
	log.Printf("turn %d: move=%s score=%.1f depth=%d phase=%s time=%v", req.Turn, decision.Move, decision.Score, maxDepth, profile.Name, elapsed)

	if s.diag != nil {
		names := make([]string, 0, len(breakdown.Terms))
		values := make([]float64, 0, len(breakdown.Terms))
		for name, value := range breakdown.Terms {
			names = append(names, name)
			values = append(values, value)
		}
		s.diag.Record(diagnostics.DecisionRow{
			GameID:          req.Game.ID,
			Turn:            int32(req.Turn),
			YouID:           req.You.ID,
			Phase:           profile.Name,
			Move:            decision.Move.String(),
			Score:           decision.Score,
			Depth:           int32(maxDepth),
			TookMs:          elapsed.Milliseconds(),
			Deadline:        time.Now().After(deadline),
			HeuristicNames:  names,
			HeuristicValues: values,
		})
	}
	s.broadcastDecision(req.Game.ID, req.Turn, decision, breakdown)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(MoveResponse{Move: decision.Move.String()})
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.budgets.End(req.Game.ID)
	if s.diag != nil {
		s.diag.Flush()
	}

	youAlive := false
	for _, snake := range req.Board.Snakes {
		if snake.ID == req.You.ID {
			youAlive = true
			break
		}
	}
	result := "lost"
	switch {
	case len(req.Board.Snakes) == 0:
		result = "draw"
	case youAlive:
		result = "won"
	}
	log.Printf("game ended: %s turn=%d result=%s", req.Game.ID, req.Turn, result)
	w.WriteHeader(http.StatusOK)
}

// handleDebugStream upgrades to a websocket and pushes every decision
// this process makes to the connected spectator, until it disconnects.
func (s *Server) handleDebugStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.specMu.Lock()
	s.spec[conn] = struct{}{}
	s.specMu.Unlock()

	go func() {
		defer func() {
			s.specMu.Lock()
			delete(s.spec, conn)
			s.specMu.Unlock()
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

type spectatorEvent struct {
	GameID    string             `json:"game_id"`
	Turn      int                `json:"turn"`
	Move      string             `json:"move"`
	Score     float64            `json:"score"`
	Breakdown map[string]float64 `json:"breakdown"`
}

func (s *Server) broadcastDecision(gameID string, turn int, decision search.MoveDecision, breakdown heuristic.Breakdown) {
	s.specMu.Lock()
	if len(s.spec) == 0 {
		s.specMu.Unlock()
		return
	}
	conns := make([]*websocket.Conn, 0, len(s.spec))
	for c := range s.spec {
		conns = append(conns, c)
	}
	s.specMu.Unlock()

	payload, err := json.Marshal(spectatorEvent{
		GameID:    gameID,
		Turn:      turn,
		Move:      decision.Move.String(),
		Score:     decision.Score,
		Breakdown: breakdown.Terms,
	})
	if err != nil {
		return
	}
	for _, c := range conns {
		_ = c.WriteMessage(websocket.TextMessage, payload)
	}
}

func convertToGameState(req *GameRequest) *game.GameState {
	food := make([]game.Coord, len(req.Board.Food))
	for i, f := range req.Board.Food {
		food[i] = game.Coord{X: f.X, Y: f.Y}
	}
	hazards := make([]game.Coord, len(req.Board.Hazards))
	for i, h := range req.Board.Hazards {
		hazards[i] = game.Coord{X: h.X, Y: h.Y}
	}
	snakes := make([]game.Snake, len(req.Board.Snakes))
	for i, sn := range req.Board.Snakes {
		body := make([]game.Coord, len(sn.Body))
		for j, b := range sn.Body {
			body[j] = game.Coord{X: b.X, Y: b.Y}
		}
		snakes[i] = game.Snake{ID: sn.ID, Health: sn.Health, Body: body}
	}
	return &game.GameState{
		Turn:  req.Turn,
		YouID: req.You.ID,
		Board: game.Board{
			Width:   req.Board.Width,
			Height:  req.Board.Height,
			Food:    food,
			Hazards: hazards,
			Snakes:  snakes,
		},
	}
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	listen := fs.String("listen", ":8080", "HTTP listen address")
	moveTimeout := fs.Duration("move-timeout", 500*time.Millisecond, "Default move timeout when a game supplies none")
	diagDir := fs.String("diagnostics-dir", "", "Directory to write per-move diagnostics parquet batches (empty disables)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("flag parse: %v", err)
	}

	server := NewServer(*moveTimeout, *diagDir)

	mux := http.NewServeMux()
	mux.HandleFunc("/", server.handleIndex)
	mux.HandleFunc("/start", server.handleStart)
	mux.HandleFunc("/move", server.handleMove)
	mux.HandleFunc("/end", server.handleEnd)
	mux.HandleFunc("/debug/stream", server.handleDebugStream)

	srv := &http.Server{
		Addr:              *listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("basilisk server listening on http://%s", *listen)
	log.Fatal(srv.ListenAndServe())
}
