package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/brushhq/paintdesk/internal/models"
)

const maxUploadSize = 20 << 20 // 20 MB

// parentExists reports whether the owner has a row with this id in the given
// model's table. Used to 404 child creation under a foreign parent.
func (r *Router) parentExists(model interface{}, id, ownerID uint) bool {
	var count int64
	r.db.Model(model).Where("id = ? AND owner_id = ?", id, ownerID).Count(&count)
	return count > 0
}

// listJobPhotos returns the photos of one job
func (r *Router) listJobPhotos(w http.ResponseWriter, req *http.Request) {
	jobID, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	ownerID := owner(req)
	if !r.parentExists(&models.Job{}, jobID, ownerID) {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}

	var photos []models.JobPhoto
	if err := r.db.Where("job_id = ? AND owner_id = ?", jobID, ownerID).Order("id").Find(&photos).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	respondJSON(w, http.StatusOK, photos)
}

// createJobPhoto attaches a photo record to a job
func (r *Router) createJobPhoto(w http.ResponseWriter, req *http.Request) {
	jobID, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	ownerID := owner(req)
	if !r.parentExists(&models.Job{}, jobID, ownerID) {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}

	var photo models.JobPhoto
	if err := json.NewDecoder(req.Body).Decode(&photo); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if photo.URL == "" {
		respondError(w, http.StatusBadRequest, "Photo URL is required")
		return
	}

	photo.ID = 0
	photo.OwnerID = ownerID
	photo.JobID = jobID
	if err := r.db.Create(&photo).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create photo")
		return
	}

	r.notify(ownerID, models.SectionJobs, "updated")
	respondJSON(w, http.StatusCreated, photo)
}

// deleteJobPhoto deletes a job photo by its own id
func (r *Router) deleteJobPhoto(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid photo ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.JobPhoto{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Photo not found")
		return
	}

	r.notify(ownerID, models.SectionJobs, "updated")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Photo deleted successfully"})
}

// listWorkerDocuments returns the documents of one worker
func (r *Router) listWorkerDocuments(w http.ResponseWriter, req *http.Request) {
	workerID, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}
	ownerID := owner(req)
	if !r.parentExists(&models.Worker{}, workerID, ownerID) {
		respondError(w, http.StatusNotFound, "Worker not found")
		return
	}

	var docs []models.WorkerDocument
	if err := r.db.Where("worker_id = ? AND owner_id = ?", workerID, ownerID).Order("id").Find(&docs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

// createWorkerDocument attaches a document record to a worker
func (r *Router) createWorkerDocument(w http.ResponseWriter, req *http.Request) {
	workerID, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}
	ownerID := owner(req)
	if !r.parentExists(&models.Worker{}, workerID, ownerID) {
		respondError(w, http.StatusNotFound, "Worker not found")
		return
	}

	var doc models.WorkerDocument
	if err := json.NewDecoder(req.Body).Decode(&doc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if doc.URL == "" {
		respondError(w, http.StatusBadRequest, "Document URL is required")
		return
	}

	doc.ID = 0
	doc.OwnerID = ownerID
	doc.WorkerID = workerID
	if err := r.db.Create(&doc).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create document")
		return
	}

	r.notify(ownerID, models.SectionWorkers, "updated")
	respondJSON(w, http.StatusCreated, doc)
}

// deleteWorkerDocument deletes a worker document by its own id
func (r *Router) deleteWorkerDocument(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid document ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.WorkerDocument{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Document not found")
		return
	}

	r.notify(ownerID, models.SectionWorkers, "updated")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Document deleted successfully"})
}

// listCustomerPhotos returns the photos of one customer
func (r *Router) listCustomerPhotos(w http.ResponseWriter, req *http.Request) {
	customerID, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	ownerID := owner(req)
	if !r.parentExists(&models.Customer{}, customerID, ownerID) {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}

	var photos []models.CustomerPhoto
	if err := r.db.Where("customer_id = ? AND owner_id = ?", customerID, ownerID).Order("id").Find(&photos).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	respondJSON(w, http.StatusOK, photos)
}

// createCustomerPhoto attaches a photo record to a customer
func (r *Router) createCustomerPhoto(w http.ResponseWriter, req *http.Request) {
	customerID, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	ownerID := owner(req)
	if !r.parentExists(&models.Customer{}, customerID, ownerID) {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}

	var photo models.CustomerPhoto
	if err := json.NewDecoder(req.Body).Decode(&photo); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if photo.URL == "" {
		respondError(w, http.StatusBadRequest, "Photo URL is required")
		return
	}

	photo.ID = 0
	photo.OwnerID = ownerID
	photo.CustomerID = customerID
	if err := r.db.Create(&photo).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create photo")
		return
	}

	r.notify(ownerID, models.SectionCustomers, "updated")
	respondJSON(w, http.StatusCreated, photo)
}

// deleteCustomerPhoto deletes a customer photo by its own id
func (r *Router) deleteCustomerPhoto(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid photo ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.CustomerPhoto{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Photo not found")
		return
	}

	r.notify(ownerID, models.SectionCustomers, "updated")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Photo deleted successfully"})
}

// uploadFile stores a multipart upload under the upload directory with a
// generated name and returns the URL it will be served from
func (r *Router) uploadFile(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, maxUploadSize)
	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	if err := os.MkdirAll(r.cfg.UploadDir, 0o755); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	dst, err := os.Create(filepath.Join(r.cfg.UploadDir, name))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"url":      "/uploads/" + name,
		"filename": header.Filename,
	})
}
