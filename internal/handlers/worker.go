package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brushhq/paintdesk/internal/models"
)

// listWorkers returns all workers of the authenticated owner
func (r *Router) listWorkers(w http.ResponseWriter, req *http.Request) {
	var workers []models.Worker
	if err := r.db.Where("owner_id = ?", owner(req)).Order("id desc").Find(&workers).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch workers")
		return
	}
	respondJSON(w, http.StatusOK, workers)
}

// getWorker returns a single worker by ID
func (r *Router) getWorker(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}

	var worker models.Worker
	if err := r.db.Where("id = ? AND owner_id = ?", id, owner(req)).First(&worker).Error; err != nil {
		respondError(w, http.StatusNotFound, "Worker not found")
		return
	}
	respondJSON(w, http.StatusOK, worker)
}

// workerNameTaken reports whether the owner already has another worker with
// this name. The per-owner unique index backs this up, but checking first
// lets us return a clean conflict instead of a raw constraint error.
func (r *Router) workerNameTaken(ownerID uint, name string, excludeID uint) bool {
	var count int64
	r.db.Model(&models.Worker{}).
		Where("owner_id = ? AND name = ? AND id <> ?", ownerID, name, excludeID).
		Count(&count)
	return count > 0
}

// createWorker creates a new worker. Names are unique per owner.
func (r *Router) createWorker(w http.ResponseWriter, req *http.Request) {
	// IsActive defaults to true unless the payload says otherwise
	payload := struct {
		models.Worker
		IsActive *bool `json:"isActive"`
	}{}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	ownerID := owner(req)

	worker := payload.Worker
	worker.ID = 0
	worker.OwnerID = ownerID
	worker.IsActive = payload.IsActive == nil || *payload.IsActive
	if worker.Name == "" {
		respondError(w, http.StatusBadRequest, "Worker name is required")
		return
	}
	if r.workerNameTaken(ownerID, worker.Name, 0) {
		respondError(w, http.StatusConflict, "A worker with this name already exists")
		return
	}

	if err := r.db.Create(&worker).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create worker")
		return
	}

	r.notify(ownerID, models.SectionWorkers, "created")
	respondJSON(w, http.StatusCreated, worker)
}

// updateWorker updates an existing worker. Renaming onto a name already used
// by the same owner is a conflict.
func (r *Router) updateWorker(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}
	ownerID := owner(req)

	var worker models.Worker
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&worker).Error; err != nil {
		respondError(w, http.StatusNotFound, "Worker not found")
		return
	}

	if err := json.NewDecoder(req.Body).Decode(&worker); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	worker.ID = id
	worker.OwnerID = ownerID
	if r.workerNameTaken(ownerID, worker.Name, id) {
		respondError(w, http.StatusConflict, "A worker with this name already exists")
		return
	}

	if err := r.db.Save(&worker).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update worker")
		return
	}

	r.notify(ownerID, models.SectionWorkers, "updated")
	respondJSON(w, http.StatusOK, worker)
}

// deleteWorker deletes a worker. Hard delete, so the name can be reused.
func (r *Router) deleteWorker(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Unscoped().Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Worker{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete worker")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Worker not found")
		return
	}

	r.notify(ownerID, models.SectionWorkers, "deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Worker deleted successfully"})
}
