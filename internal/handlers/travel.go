package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brushhq/paintdesk/internal/models"
)

// listTravelLogs returns travel logs, optionally filtered by date (?date=2026-08-29)
func (r *Router) listTravelLogs(w http.ResponseWriter, req *http.Request) {
	query := r.db.Where("owner_id = ?", owner(req))
	if date := req.URL.Query().Get("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var logs []models.TravelLog
	if err := query.Order("date desc, id desc").Find(&logs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch travel logs")
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

// createTravelLog creates a new travel log entry
func (r *Router) createTravelLog(w http.ResponseWriter, req *http.Request) {
	var entry models.TravelLog
	if err := json.NewDecoder(req.Body).Decode(&entry); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	ownerID := owner(req)

	entry.ID = 0
	entry.OwnerID = ownerID
	if err := r.db.Create(&entry).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create travel log")
		return
	}

	r.notify(ownerID, "travel_logs", "created")
	respondJSON(w, http.StatusCreated, entry)
}

// updateTravelLog updates a travel log entry
func (r *Router) updateTravelLog(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid travel log ID")
		return
	}
	ownerID := owner(req)

	var entry models.TravelLog
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&entry).Error; err != nil {
		respondError(w, http.StatusNotFound, "Travel log not found")
		return
	}

	if err := json.NewDecoder(req.Body).Decode(&entry); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	entry.ID = id
	entry.OwnerID = ownerID
	if err := r.db.Save(&entry).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update travel log")
		return
	}

	r.notify(ownerID, "travel_logs", "updated")
	respondJSON(w, http.StatusOK, entry)
}

// deleteTravelLog deletes a travel log entry
func (r *Router) deleteTravelLog(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid travel log ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.TravelLog{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete travel log")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Travel log not found")
		return
	}

	r.notify(ownerID, "travel_logs", "deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Travel log deleted successfully"})
}
