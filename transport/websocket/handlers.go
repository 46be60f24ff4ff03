package websocket

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

var errMissingColumn = errors.New("payload must carry a column")

func (that *Server) handleNewGame(ctx context.Context, _ *RequestPayload) (ResponsePayload, error) {
	game, err := that.games.NewGame(ctx)
	if err != nil {
		return ResponsePayload{}, err
	}

	return gameResponse(game), nil
}

func (that *Server) handleState(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	game, err := that.games.GetGame(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return gameResponse(game), nil
}

func (that *Server) handleDrop(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.Column == nil {
		return ResponsePayload{}, errMissingColumn
	}

	game, move, err := that.games.DropToken(ctx, payload.GameID, *payload.Column)
	if err != nil {
		// a rejected move still reports the untouched game
		if game != nil {
			return gameResponse(game), err
		}
		return ResponsePayload{}, err
	}

	response := gameResponse(game)
	response.Move = &move

	return response, nil
}

func (that *Server) handleRestart(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	game, err := that.games.Restart(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return gameResponse(game), nil
}

func (that *Server) handleEnd(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if err := that.games.EndGame(ctx, payload.GameID); err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{}, nil
}

// errorResponse keeps rules rejections visible to the client and hides
// internal failures behind a generic message.
func (that *Server) errorResponse(log *slog.Logger, response ResponsePayload, err error) ResponsePayload {
	switch {
	case apperror.IsRejection(err), errors.Is(err, apperror.ErrGameNotFound), errors.Is(err, errMissingColumn):
		log.Debug("request rejected", "error", err)
		response.Error = err.Error()
	default:
		log.Error("request failed", "error", err)
		response = ResponsePayload{Error: "internal error"}
	}

	return response
}
