package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// AdminTemplateRequest is the request body for creating or updating a
// question template in the pool.
type AdminTemplateRequest struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// AdminTemplateItem is one stored question template.
type AdminTemplateItem struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

func validateTemplate(req AdminTemplateRequest) string {
	if strings.TrimSpace(req.Text) == "" {
		return "text is required"
	}
	if len(req.Options) < 2 {
		return "at least two options are required"
	}
	for _, opt := range req.Options {
		if strings.TrimSpace(opt) == "" {
			return "options must not be blank"
		}
	}
	if req.CorrectIndex < 0 || req.CorrectIndex >= len(req.Options) {
		return "correctIndex is out of range"
	}
	return ""
}

func handleAdminListTemplates(templates *TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := templates.All(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		items := make([]AdminTemplateItem, len(docs))
		for i, doc := range docs {
			items[i] = AdminTemplateItem{
				ID:           doc.ID,
				Text:         doc.Text,
				Options:      doc.Options,
				CorrectIndex: doc.CorrectIndex,
			}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func handleAdminCreateTemplate(templates *TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminTemplateRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := validateTemplate(req); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		doc := templateDoc{
			ID:           newID(),
			Text:         req.Text,
			Options:      req.Options,
			CorrectIndex: req.CorrectIndex,
		}
		if err := templates.Put(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, AdminTemplateItem{
			ID:           doc.ID,
			Text:         doc.Text,
			Options:      doc.Options,
			CorrectIndex: doc.CorrectIndex,
		})
	}
}

func handleAdminUpdateTemplate(templates *TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if _, err := templates.Get(r.Context(), id); errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		var req AdminTemplateRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := validateTemplate(req); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		doc := templateDoc{
			ID:           id,
			Text:         req.Text,
			Options:      req.Options,
			CorrectIndex: req.CorrectIndex,
		}
		if err := templates.Put(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, AdminTemplateItem{
			ID:           doc.ID,
			Text:         doc.Text,
			Options:      doc.Options,
			CorrectIndex: doc.CorrectIndex,
		})
	}
}

func handleAdminDeleteTemplate(templates *TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := templates.Delete(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
