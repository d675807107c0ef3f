package adapthttp

import (
	"net/http"
	"strconv"

	"escena/internal/domain"
)

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var m domain.ContactMessage
	if err := parseJSON(r, &m); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}

	id, err := s.contact.Submit(r.Context(), &m)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "id": id})
}

func (s *Server) handleMessageList(w http.ResponseWriter, r *http.Request) {
	onlyUnread, _ := strconv.ParseBool(r.URL.Query().Get("unread"))
	items, err := s.contact.List(r.Context(), onlyUnread)
	if err != nil {
		s.log.WithError(err).Error("list messages failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleMessageMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := s.contact.MarkRead(r.Context(), pathID(r)); err != nil {
		writeError(w, http.StatusNotFound, "Mensaje no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleMessageDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.contact.Delete(r.Context(), pathID(r)); err != nil {
		s.log.WithError(err).Error("delete message failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
