package httpapi

import (
	"net/http"

	"taskpurse/internal/server/models"
)

func (s *Server) handleBudgetList(w http.ResponseWriter, r *http.Request) {
	rows, err := s.budget.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.logger.Error(r.Context(), "budget list failed", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleBudgetGet(w http.ResponseWriter, r *http.Request) {
	row, err := s.budget.Get(r.Context(), userIDFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleBudgetCreate(w http.ResponseWriter, r *http.Request) {
	var draft models.BudgetItem
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	row, err := s.budget.Create(r.Context(), userIDFrom(r.Context()), draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleBudgetUpdate(w http.ResponseWriter, r *http.Request) {
	var patch models.BudgetItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.budget.Update(r.Context(), userIDFrom(r.Context()), r.PathValue("id"), patch); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleBudgetDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.budget.Delete(r.Context(), userIDFrom(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
