package adapthttp

import (
	"net/http"

	"escena/internal/domain"
)

func (s *Server) handleSiteConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.site.GetConfig(r.Context())
	if err != nil {
		s.log.WithError(err).Error("get site config failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleSiteUpdate(w http.ResponseWriter, r *http.Request) {
	var cfg domain.SiteConfig
	if err := parseJSON(r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}

	if err := s.site.UpdateConfig(r.Context(), &cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleSocialList(w http.ResponseWriter, r *http.Request) {
	items, err := s.site.ListSocialLinks(r.Context(), true)
	if err != nil {
		s.log.WithError(err).Error("list social links failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleSocialAdminList(w http.ResponseWriter, r *http.Request) {
	items, err := s.site.ListSocialLinks(r.Context(), false)
	if err != nil {
		s.log.WithError(err).Error("list social links failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleSocialCreate(w http.ResponseWriter, r *http.Request) {
	var l domain.SocialLink
	if err := parseJSON(r, &l); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}

	id, err := s.site.CreateSocialLink(r.Context(), &l)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	l.ID = id
	writeJSON(w, http.StatusCreated, l)
}

func (s *Server) handleSocialUpdate(w http.ResponseWriter, r *http.Request) {
	var l domain.SocialLink
	if err := parseJSON(r, &l); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}
	l.ID = pathID(r)

	if err := s.site.UpdateSocialLink(r.Context(), &l); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleSocialDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.site.DeleteSocialLink(r.Context(), pathID(r)); err != nil {
		s.log.WithError(err).Error("delete social link failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
