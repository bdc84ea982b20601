// Package main runs local self-play matches between two instances of
// the move-decision core, using the full-rules engine package, and
// displays live stats in a terminal UI.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/basiliskbot/basilisk/engine"
	"github.com/basiliskbot/basilisk/game"
	"github.com/basiliskbot/basilisk/heuristic"
	"github.com/basiliskbot/basilisk/rules"
	"github.com/basiliskbot/basilisk/search"
)

var totalMoves atomic.Int64
var totalGames atomic.Int64

// GameUpdate reports one finished self-play game to the UI loop.
type GameUpdate struct {
	WorkerID int
	Turns    int
	Winner   string
}

type model struct {
	gamesPlayed int
	wins        map[string]int
	startTime   time.Time
	recent      []string
	updates     chan GameUpdate
}

func initialModel(updates chan GameUpdate) model {
	return model{startTime: time.Now(), updates: updates, wins: make(map[string]int)}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForUpdate(updates chan GameUpdate) tea.Cmd {
	return func() tea.Msg { return <-updates }
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		return m, tickCmd()
	case GameUpdate:
		m.gamesPlayed++
		m.wins[msg.Winner]++
		line := fmt.Sprintf("worker %d: winner=%s turns=%d", msg.WorkerID, msg.Winner, msg.Turns)
		m.recent = append([]string{line}, m.recent...)
		if len(m.recent) > 10 {
			m.recent = m.recent[:10]
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	movesPerSec := 0.0
	gamesPerSec := 0.0
	if duration.Seconds() >= 1 {
		movesPerSec = float64(totalMoves.Load()) / duration.Seconds()
		gamesPerSec = float64(m.gamesPlayed) / duration.Seconds()
	}

	s := fmt.Sprintf("Games Played:   %d\n", m.gamesPlayed)
	s += fmt.Sprintf("Duration:       %s\n", duration.Round(time.Second))
	s += fmt.Sprintf("Games/Sec:      %.2f\n", gamesPerSec)
	s += fmt.Sprintf("Moves/Sec:      %.2f\n\n", movesPerSec)

	s += "Wins:\n"
	for id, wins := range m.wins {
		s += fmt.Sprintf("  %s: %d\n", id, wins)
	}

	s += "\nRecent games:\n"
	for _, g := range m.recent {
		s += g + "\n"
	}
	s += "\nPress q to quit.\n"
	return s
}

// coreChooser wires the move-decision core into engine.Chooser: run
// bounded-depth search under a per-move deadline like a real server
// would give it.
func coreChooser(moveBudget time.Duration) engine.Chooser {
	return func(view *game.GameState) game.Direction {
		totalMoves.Add(1)
		profile := heuristic.SelectProfile(view)
		safe := rules.SafeMoves(view)
		depth0 := make(map[game.Direction]float64, len(safe))
		for _, move := range safe {
			depth0[move] = heuristic.Evaluate(rules.ApplyMoveFrozen(view, move), profile).Score
		}
		maxDepth := search.DynamicDepth(view)
		decision := search.ChooseMove(view, maxDepth, profile, depth0, time.Now().Add(moveBudget))
		return decision.Move
	}
}

func startingState(width, height int) *game.GameState {
	return &game.GameState{
		Turn: 0,
		Board: game.Board{
			Width:  width,
			Height: height,
			Food:   []game.Coord{{X: width / 2, Y: height / 2}},
			Snakes: []game.Snake{
				{ID: "a", Health: 100, Body: []game.Coord{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}},
				{ID: "b", Health: 100, Body: []game.Coord{{X: width - 2, Y: height - 2}, {X: width - 2, Y: height - 2}, {X: width - 2, Y: height - 2}}},
			},
		},
	}
}

func runWorker(id int, moveBudget time.Duration, maxTurns int, updates chan<- GameUpdate, stop <-chan struct{}) {
	rng := rand.New(rand.NewSource(int64(id) + 1))
	choosers := map[string]engine.Chooser{
		"a": coreChooser(moveBudget),
		"b": coreChooser(moveBudget),
	}
	for {
		select {
		case <-stop:
			return
		default:
		}

		final, outcome := engine.PlayGame(startingState(11, 11), choosers, engine.DefaultRulesetSettings, rng, maxTurns)
		winner := "draw"
		if len(final.Board.Snakes) == 1 {
			winner = final.Board.Snakes[0].ID
		}
		totalGames.Add(1)

		select {
		case updates <- GameUpdate{WorkerID: id, Turns: outcome.Turns, Winner: winner}:
		case <-stop:
			return
		}
	}
}

func main() {
	workers := flag.Int("workers", 4, "number of parallel self-play workers")
	moveBudget := flag.Duration("move-budget", 100*time.Millisecond, "per-move search deadline within each self-play game")
	maxTurns := flag.Int("max-turns", 500, "turn cap per self-play game")
	headless := flag.Bool("headless", false, "run without the terminal UI, just log summaries")
	flag.Parse()

	updates := make(chan GameUpdate, *workers)
	stop := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(id, *moveBudget, *maxTurns, updates, stop)
		}(i)
	}

	if *headless {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case u := <-updates:
				log.Printf("worker %d: winner=%s turns=%d (games=%d)", u.WorkerID, u.Winner, u.Turns, totalGames.Load())
			case <-ticker.C:
				log.Printf("games=%d moves=%d", totalGames.Load(), totalMoves.Load())
			}
		}
	}

	p := tea.NewProgram(initialModel(updates))
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
	close(stop)
	wg.Wait()
}
