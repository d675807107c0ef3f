package adapthttp

import (
	"net/http"
	"strconv"

	"escena/internal/domain"
)

func (s *Server) handleGenreList(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.ListGenres(r.Context())
	if err != nil {
		s.log.WithError(err).Error("list genres failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGenreCreate(w http.ResponseWriter, r *http.Request) {
	var g domain.Genre
	if err := parseJSON(r, &g); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}

	id, err := s.catalog.CreateGenre(r.Context(), &g)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g.ID = id
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleGenreUpdate(w http.ResponseWriter, r *http.Request) {
	var g domain.Genre
	if err := parseJSON(r, &g); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}
	g.ID = pathID(r)

	if err := s.catalog.UpdateGenre(r.Context(), &g); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGenreDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteGenre(r.Context(), pathID(r)); err != nil {
		s.log.WithError(err).Error("delete genre failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleTrackList(w http.ResponseWriter, r *http.Request) {
	genreID, _ := strconv.ParseInt(r.URL.Query().Get("genre"), 10, 64)
	items, err := s.catalog.ListTracks(r.Context(), genreID)
	if err != nil {
		s.log.WithError(err).Error("list tracks failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleTrackCreate(w http.ResponseWriter, r *http.Request) {
	var t domain.Track
	if err := parseJSON(r, &t); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}

	id, err := s.catalog.CreateTrack(r.Context(), &t)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t.ID = id
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleTrackUpdate(w http.ResponseWriter, r *http.Request) {
	var t domain.Track
	if err := parseJSON(r, &t); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}
	t.ID = pathID(r)

	if err := s.catalog.UpdateTrack(r.Context(), &t); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleTrackDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteTrack(r.Context(), pathID(r)); err != nil {
		s.log.WithError(err).Error("delete track failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
