// Package main serves a small dashboard over the diagnostics parquet
// files cmd/server writes, using DuckDB to query them directly without
// a separate load step.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DBCache holds a DuckDB connection over a glob of diagnostics parquet
// files, refreshing periodically so newly-flushed batches become
// visible without restarting the process.
type DBCache struct {
	root        string
	refreshRate time.Duration

	mu          sync.RWMutex
	db          *sql.DB
	lastRefresh time.Time
}

func NewDBCache(root string, refreshRate time.Duration) *DBCache {
	return &DBCache{root: root, refreshRate: refreshRate}
}

func (c *DBCache) Get() (*sql.DB, error) {
	c.mu.RLock()
	if c.db != nil && time.Since(c.lastRefresh) < c.refreshRate {
		db := c.db
		c.mu.RUnlock()
		return db, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil && time.Since(c.lastRefresh) < c.refreshRate {
		return c.db, nil
	}
	return c.refreshLocked()
}

func (c *DBCache) refreshLocked() (*sql.DB, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	_, _ = db.Exec("PRAGMA threads=4")

	glob := "'" + escapeSQLString(filepath.Join(c.root, "**", "*.parquet")) + "'"
	sqlText := `CREATE OR REPLACE VIEW decisions AS
		SELECT * FROM read_parquet([` + glob + `], filename=true, union_by_name=true)
		WHERE NOT contains(filename, '/tmp/')`
	if _, err := db.Exec(sqlText); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create decisions view: %w", err)
	}

	if c.db != nil {
		_ = c.db.Close()
	}
	c.db = db
	c.lastRefresh = time.Now()
	return c.db, nil
}

func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// GameSummary is one row of the /games listing.
type GameSummary struct {
	GameID    string  `json:"game_id"`
	Turns     int     `json:"turns"`
	AvgScore  float64 `json:"avg_score"`
	Deadlines int     `json:"deadlines_hit"`
}

func queryGames(ctx context.Context, db *sql.DB) ([]GameSummary, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT game_id, COUNT(*) AS turns, AVG(score) AS avg_score,
		       SUM(CASE WHEN deadline_hit THEN 1 ELSE 0 END) AS deadlines
		FROM decisions
		GROUP BY game_id
		ORDER BY turns DESC`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var out []GameSummary
	for rows.Next() {
		var g GameSummary
		if err := rows.Scan(&g.GameID, &g.Turns, &g.AvgScore, &g.Deadlines); err != nil {
			return nil, fmt.Errorf("scan game summary: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

type server struct {
	cache *DBCache
}

func (s *server) handleGames(w http.ResponseWriter, r *http.Request) {
	db, err := s.cache.Get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	games, err := queryGames(r.Context(), db)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(games)
}

// handleQuery runs an ad-hoc SQL query against the decisions view,
// passed as ?sql=. The query is executed as given; nothing restricts it
// to reads.
func (s *server) handleQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("sql")
	if q == "" {
		http.Error(w, "missing sql query parameter", http.StatusBadRequest)
		return
	}
	db, err := s.cache.Get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rows, err := db.QueryContext(r.Context(), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			row[c] = values[i]
		}
		out = append(out, row)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func main() {
	dir := flag.String("diagnostics-dir", "diagnostics", "directory containing decision parquet batches")
	listen := flag.String("listen", ":8090", "HTTP listen address")
	refresh := flag.Duration("refresh", 10*time.Second, "how often to re-scan the diagnostics directory for new parquet files")
	flag.Parse()

	s := &server{cache: NewDBCache(*dir, *refresh)}

	mux := http.NewServeMux()
	mux.HandleFunc("/games", s.handleGames)
	mux.HandleFunc("/query", s.handleQuery)

	srv := &http.Server{
		Addr:              *listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("inspector listening on http://%s (watching %s)", *listen, *dir)
	log.Fatal(srv.ListenAndServe())
}
