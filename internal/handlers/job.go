package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brushhq/paintdesk/internal/models"
	"github.com/brushhq/paintdesk/internal/utils"
)

// listJobs returns all jobs of the authenticated owner
func (r *Router) listJobs(w http.ResponseWriter, req *http.Request) {
	var jobs []models.Job
	if err := r.db.Where("owner_id = ?", owner(req)).Order("id desc").Find(&jobs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

// getJob returns a single job by ID
func (r *Router) getJob(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var job models.Job
	if err := r.db.Where("id = ? AND owner_id = ?", id, owner(req)).First(&job).Error; err != nil {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// createJob creates a new job. The job code is derived here, once, from the
// owner's job ordinal, the category and the creation date; it never changes
// afterwards. AgreedAmount falls back to QuotedAmount when not supplied.
func (r *Router) createJob(w http.ResponseWriter, req *http.Request) {
	var job models.Job
	if err := json.NewDecoder(req.Body).Decode(&job); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	ownerID := owner(req)

	// Ordinal counts every job the owner ever created, soft-deleted included,
	// so codes are never reissued
	var ordinal int64
	if err := r.db.Unscoped().Model(&models.Job{}).Where("owner_id = ?", ownerID).Count(&ordinal).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	job.ID = 0
	job.OwnerID = ownerID
	job.JobCode = utils.GenerateJobCode(int(ordinal)+1, job.Category, time.Now().UTC())
	if job.Status == "" {
		job.Status = models.JobStatusQuoted
	}
	if job.AgreedAmount == 0 {
		job.AgreedAmount = job.QuotedAmount
	}

	if err := r.db.Create(&job).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	r.notify(ownerID, models.SectionJobs, "created")
	respondJSON(w, http.StatusCreated, job)
}

// updateJob updates an existing job. JobCode is immutable.
func (r *Router) updateJob(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	ownerID := owner(req)

	var job models.Job
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&job).Error; err != nil {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	jobCode := job.JobCode

	if err := json.NewDecoder(req.Body).Decode(&job); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	job.ID = id
	job.OwnerID = ownerID
	job.JobCode = jobCode
	if err := r.db.Save(&job).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update job")
		return
	}

	r.notify(ownerID, models.SectionJobs, "updated")
	respondJSON(w, http.StatusOK, job)
}

// deleteJob deletes a job
func (r *Router) deleteJob(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Job{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}

	r.notify(ownerID, models.SectionJobs, "deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Job deleted successfully"})
}
