package adapthttp

import (
	"net/http"

	"escena/internal/domain"
)

func (s *Server) handleHeroList(w http.ResponseWriter, r *http.Request) {
	items, err := s.content.ListHeroSlides(r.Context(), true)
	if err != nil {
		s.log.WithError(err).Error("list hero slides failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleHeroAdminList(w http.ResponseWriter, r *http.Request) {
	items, err := s.content.ListHeroSlides(r.Context(), false)
	if err != nil {
		s.log.WithError(err).Error("list hero slides failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleHeroCreate(w http.ResponseWriter, r *http.Request) {
	var slide domain.HeroSlide
	if err := parseJSON(r, &slide); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}

	id, err := s.content.CreateHeroSlide(r.Context(), &slide)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slide.ID = id
	writeJSON(w, http.StatusCreated, slide)
}

func (s *Server) handleHeroUpdate(w http.ResponseWriter, r *http.Request) {
	var slide domain.HeroSlide
	if err := parseJSON(r, &slide); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}
	slide.ID = pathID(r)

	if err := s.content.UpdateHeroSlide(r.Context(), &slide); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, slide)
}

func (s *Server) handleHeroDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteHeroSlide(r.Context(), pathID(r)); err != nil {
		s.log.WithError(err).Error("delete hero slide failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleGalleryList(w http.ResponseWriter, r *http.Request) {
	items, err := s.content.ListGalleryImages(r.Context())
	if err != nil {
		s.log.WithError(err).Error("list gallery failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGalleryCreate(w http.ResponseWriter, r *http.Request) {
	var img domain.GalleryImage
	if err := parseJSON(r, &img); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}

	id, err := s.content.CreateGalleryImage(r.Context(), &img)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	img.ID = id
	writeJSON(w, http.StatusCreated, img)
}

func (s *Server) handleGalleryDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteGalleryImage(r.Context(), pathID(r)); err != nil {
		s.log.WithError(err).Error("delete gallery image failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
