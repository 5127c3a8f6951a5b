package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brushhq/paintdesk/internal/models"
)

// listExpenses returns expenses, optionally filtered by job (?jobId=5)
func (r *Router) listExpenses(w http.ResponseWriter, req *http.Request) {
	query := r.db.Where("owner_id = ?", owner(req))
	if jobID := req.URL.Query().Get("jobId"); jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}

	var expenses []models.Expense
	if err := query.Order("date desc, id desc").Find(&expenses).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch expenses")
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

// getExpense returns a single expense by ID
func (r *Router) getExpense(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	var expense models.Expense
	if err := r.db.Where("id = ? AND owner_id = ?", id, owner(req)).First(&expense).Error; err != nil {
		respondError(w, http.StatusNotFound, "Expense not found")
		return
	}
	respondJSON(w, http.StatusOK, expense)
}

// createExpense creates a new expense
func (r *Router) createExpense(w http.ResponseWriter, req *http.Request) {
	var expense models.Expense
	if err := json.NewDecoder(req.Body).Decode(&expense); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	ownerID := owner(req)

	expense.ID = 0
	expense.OwnerID = ownerID
	if err := r.db.Create(&expense).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	r.notify(ownerID, "expenses", "created")
	respondJSON(w, http.StatusCreated, expense)
}

// updateExpense updates an existing expense
func (r *Router) updateExpense(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}
	ownerID := owner(req)

	var expense models.Expense
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&expense).Error; err != nil {
		respondError(w, http.StatusNotFound, "Expense not found")
		return
	}

	if err := json.NewDecoder(req.Body).Decode(&expense); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	expense.ID = id
	expense.OwnerID = ownerID
	if err := r.db.Save(&expense).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update expense")
		return
	}

	r.notify(ownerID, "expenses", "updated")
	respondJSON(w, http.StatusOK, expense)
}

// deleteExpense deletes an expense
func (r *Router) deleteExpense(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Expense{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Expense not found")
		return
	}

	r.notify(ownerID, "expenses", "deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}
