package httpapi

import (
	"net/http"

	"taskpurse/internal/server/models"
)

func (s *Server) handleTaskList(w http.ResponseWriter, r *http.Request) {
	rows, err := s.tasks.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.logger.Error(r.Context(), "task list failed", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleTaskGet(w http.ResponseWriter, r *http.Request) {
	row, err := s.tasks.Get(r.Context(), userIDFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	var draft models.Task
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	row, err := s.tasks.Create(r.Context(), userIDFrom(r.Context()), draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	var patch models.TaskPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.tasks.Update(r.Context(), userIDFrom(r.Context()), r.PathValue("id"), patch); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.Delete(r.Context(), userIDFrom(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
