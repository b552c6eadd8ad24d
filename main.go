package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type StatusResponse struct {
	ID          string            `json:"id"`
	Settings    GameSettingsDTO   `json:"settings"`
	Config      Config            `json:"config"`
	Board       [][]int           `json:"board"`
	BoardSize   int               `json:"board_size"`
	NextPlayer  int               `json:"next_player"`
	Winner      int               `json:"winner"`
	Status      string            `json:"status"`
	History     []historyEntryDTO `json:"history"`
	WinningLine []Move            `json:"winning_line"`
	LastMessage string            `json:"last_message,omitempty"`
}

type GameSettingsDTO struct {
	Mode             string  `json:"mode"`
	HumanPlayer      int     `json:"human_player"`
	Difficulty       string  `json:"difficulty"`
	MixedProbability float64 `json:"mixed_probability"`
	Seed             int64   `json:"seed"`
}

type apiMove struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type historyEntryDTO struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
}

func main() {
	consoleMode := flag.Bool("console", false, "play in the terminal instead of serving the web API")
	addr := flag.String("addr", ":8080", "listen address for the web API")
	flag.Parse()

	if *consoleMode {
		runConsole(os.Stdin, os.Stdout)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewGameService(ctx.Done())

	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.TickAll()
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/api/games", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := DefaultGameSettings()
		if payload.Settings != nil {
			settings = settingsFromDTO(*payload.Settings, settings)
		}
		session := service.Create(settings)
		session.Controller.StartGame(settings)
		writeJSON(w, http.StatusCreated, sessionStatus(session))
	})

	r.Route("/api/games/{id}", func(r chi.Router) {
		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			session, ok := service.Get(chi.URLParam(r, "id"))
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
				return
			}
			writeJSON(w, http.StatusOK, sessionStatus(session))
		})

		r.Post("/start", func(w http.ResponseWriter, r *http.Request) {
			session, ok := service.Get(chi.URLParam(r, "id"))
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
				return
			}
			var payload struct {
				Settings *GameSettingsDTO `json:"settings"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
				return
			}
			settings := session.Controller.Settings()
			if payload.Settings != nil {
				settings = settingsFromDTO(*payload.Settings, settings)
			}
			service.RestartSession(session, settings)
			writeJSON(w, http.StatusOK, sessionStatus(session))
		})

		r.Post("/move", func(w http.ResponseWriter, r *http.Request) {
			session, ok := service.Get(chi.URLParam(r, "id"))
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
				return
			}
			var payload apiMove
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
				return
			}
			applied, errMsg := session.Controller.ApplyHumanMove(Move{X: payload.X, Y: payload.Y})
			if !applied {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
				return
			}
			session.Hub.Publish(wsMessage{Type: "status", Payload: mustMarshal(sessionStatus(session))})
			writeJSON(w, http.StatusOK, sessionStatus(session))
		})

		r.Post("/settings", func(w http.ResponseWriter, r *http.Request) {
			session, ok := service.Get(chi.URLParam(r, "id"))
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
				return
			}
			var payload struct {
				Settings *GameSettingsDTO `json:"settings"`
				Config   *Config          `json:"config"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
				return
			}
			if payload.Config != nil {
				configStore.Update(*payload.Config)
			}
			if payload.Settings != nil {
				settings := settingsFromDTO(*payload.Settings, session.Controller.Settings())
				session.Controller.UpdateSettings(settings, false)
			}
			session.Hub.Publish(wsMessage{Type: "settings", Payload: mustMarshal(sessionStatus(session))})
			writeJSON(w, http.StatusOK, sessionStatus(session))
		})
	})

	r.Get("/api/scoreboard", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Scores())
	})

	r.Get("/ws/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		session, ok := service.Get(chi.URLParam(r, "id"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		serveGameWS(session, w, r)
	})

	server := &http.Server{
		Addr:    *addr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[backend] listening on %s", *addr)
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}
}

func sessionStatus(session *GameSession) StatusResponse {
	state := session.Controller.State()
	return StatusResponse{
		ID:          session.ID,
		Settings:    settingsDTO(session.Controller.Settings()),
		Config:      GetConfig(),
		Board:       boardToInts(state.Board),
		BoardSize:   boardSize,
		NextPlayer:  playerToInt(state.ToMove),
		Winner:      winnerFromStatus(state.Status),
		Status:      statusToString(state.Status),
		History:     historyToDTO(session.Controller.History()),
		WinningLine: state.WinningLine,
		LastMessage: state.LastMessage,
	}
}

func settingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "human_vs_ai"
	humanPlayer := 0
	switch {
	case settings.XType == PlayerHuman && settings.OType == PlayerHuman:
		mode = "human_vs_human"
	case settings.XType == PlayerAI && settings.OType == PlayerAI:
		mode = "ai_vs_ai"
	case settings.XType == PlayerHuman:
		humanPlayer = 1
	default:
		humanPlayer = 2
	}
	return GameSettingsDTO{
		Mode:             mode,
		HumanPlayer:      humanPlayer,
		Difficulty:       settings.Difficulty,
		MixedProbability: settings.MixedProbability,
		Seed:             settings.Seed,
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "human_vs_human":
		settings.XType = PlayerHuman
		settings.OType = PlayerHuman
	case "ai_vs_ai":
		settings.XType = PlayerAI
		settings.OType = PlayerAI
	case "human_vs_ai":
		if dto.HumanPlayer == 2 {
			settings.XType = PlayerAI
			settings.OType = PlayerHuman
		} else {
			settings.XType = PlayerHuman
			settings.OType = PlayerAI
		}
	}
	switch dto.Difficulty {
	case DifficultyHard, DifficultyMedium, DifficultyEasy:
		settings.Difficulty = dto.Difficulty
	}
	if dto.MixedProbability > 0 && dto.MixedProbability <= 1 {
		settings.MixedProbability = dto.MixedProbability
	}
	if dto.Seed != 0 {
		settings.Seed = dto.Seed
	}
	return settings
}

func boardToInts(board Board) [][]int {
	rows := make([][]int, boardSize)
	for y := 0; y < boardSize; y++ {
		row := make([]int, boardSize)
		for x := 0; x < boardSize; x++ {
			row[x] = cellToInt(board.At(x, y))
		}
		rows[y] = row
	}
	return rows
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	out := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryToDTO(entry))
	}
	return out
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		X:         entry.Move.X,
		Y:         entry.Move.Y,
		Player:    playerToInt(entry.Player),
		ElapsedMs: entry.ElapsedMs,
		IsAi:      entry.IsAi,
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerX {
		return 1
	}
	return 2
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellX:
		return 1
	case CellO:
		return 2
	default:
		return 0
	}
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusXWon:
		return 1
	case StatusOWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusXWon:
		return "x_won"
	case StatusOWon:
		return "o_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
