package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

func (that *Server) index(w http.ResponseWriter, _ *http.Request) {
	body, err := render(that.pages.index, nil)
	if err != nil {
		that.logger.Error("failed to render index", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeHTML(w, body)
}

func (that *Server) createPage(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context(), 0, 0)
	if err != nil {
		that.logger.Error("failed to create game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/game/"+game.ID, http.StatusSeeOther)
}

func (that *Server) viewPage(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, apperror.ErrGameNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		that.logger.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view := game.View()
	body, err := render(that.pages.game, gamePage{Game: view, TurnMessage: turnMessage(view)})
	if err != nil {
		that.logger.Error("failed to render game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeHTML(w, body)
}

// turnPage handles a click on a point. Rejected moves are ignored and the
// board is shown again.
func (that *Server) turnPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	x, errX := strconv.Atoi(r.FormValue("x"))
	y, errY := strconv.Atoi(r.FormValue("y"))
	if errX != nil || errY != nil {
		http.Error(w, "x and y must be integers", http.StatusBadRequest)
		return
	}

	_, err := that.games.MakeTurn(r.Context(), id, x, y)
	switch {
	case err == nil,
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrOutOfBounds):
	case errors.Is(err, apperror.ErrGameNotFound):
		http.NotFound(w, r)
		return
	default:
		that.logger.Error("failed to make turn", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/game/"+id, http.StatusSeeOther)
}

func (that *Server) writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
