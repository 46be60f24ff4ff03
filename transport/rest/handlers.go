package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	DropToken(ctx context.Context, id string, column int) (*entity.Game, entity.Move, error)
	Restart(ctx context.Context, id string) (*entity.Game, error)
	GetCell(ctx context.Context, id string, row, col int) (entity.Cell, error)
	EndGame(ctx context.Context, id string) error
}

type DropRequest struct {
	Column *int `json:"column"`
}

type GameResponse struct {
	Game  *entity.Game `json:"game"`
	Move  *entity.Move `json:"move,omitempty"`
	Label string       `json:"label"`
}

type CellResponse struct {
	Row    int             `json:"row"`
	Column int             `json:"column"`
	Empty  bool            `json:"empty"`
	Player entity.PlayerID `json:"player,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewHandlers(logger *slog.Logger, games gameUseCase) *Handlers {
	return &Handlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *Handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "NewGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, GameResponse{Game: game, Label: game.Label()})
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, GameResponse{Game: game, Label: game.Label()})
}

func (that *Handlers) DropToken(w http.ResponseWriter, r *http.Request) {
	var req DropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Column == nil {
		that.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "body must be {\"column\": <int>}"})
		return
	}

	game, move, err := that.games.DropToken(r.Context(), mux.Vars(r)["id"], *req.Column)
	if err != nil {
		that.writeError(w, "DropToken", err)
		return
	}

	that.writeJSON(w, http.StatusOK, GameResponse{Game: game, Move: &move, Label: game.Label()})
}

func (that *Handlers) Restart(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.Restart(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, "Restart", err)
		return
	}

	that.writeJSON(w, http.StatusOK, GameResponse{Game: game, Label: game.Label()})
}

func (that *Handlers) GetCell(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// the route pattern only admits integers
	row, _ := strconv.Atoi(vars["row"])
	col, _ := strconv.Atoi(vars["col"])

	cell, err := that.games.GetCell(r.Context(), vars["id"], row, col)
	if err != nil {
		that.writeError(w, "GetCell", err)
		return
	}

	player, occupied := cell.Owner()
	that.writeJSON(w, http.StatusOK, CellResponse{Row: row, Column: col, Empty: !occupied, Player: player})
}

func (that *Handlers) EndGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.EndGame(r.Context(), mux.Vars(r)["id"]); err != nil {
		that.writeError(w, "EndGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, ErrorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidColumn), errors.Is(err, apperror.ErrInvalidCell):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrColumnFull), errors.Is(err, apperror.ErrGameOver):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
