package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brushhq/paintdesk/internal/models"
)

// listAttendance returns attendance records, optionally filtered by date
// (?date=2026-08-29) or worker (?workerId=3)
func (r *Router) listAttendance(w http.ResponseWriter, req *http.Request) {
	query := r.db.Where("owner_id = ?", owner(req))
	if date := req.URL.Query().Get("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if workerID := req.URL.Query().Get("workerId"); workerID != "" {
		query = query.Where("worker_id = ?", workerID)
	}

	var records []models.Attendance
	if err := query.Order("date desc, id desc").Find(&records).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// createAttendance creates an attendance record
func (r *Router) createAttendance(w http.ResponseWriter, req *http.Request) {
	var record models.Attendance
	if err := json.NewDecoder(req.Body).Decode(&record); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	ownerID := owner(req)

	record.ID = 0
	record.OwnerID = ownerID
	if record.Status == "" {
		record.Status = models.AttendanceFull
	}
	if err := r.db.Create(&record).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create attendance record")
		return
	}

	r.notify(ownerID, models.SectionWorkersAttendance, "created")
	respondJSON(w, http.StatusCreated, record)
}

// updateAttendance updates an attendance record
func (r *Router) updateAttendance(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid attendance ID")
		return
	}
	ownerID := owner(req)

	var record models.Attendance
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&record).Error; err != nil {
		respondError(w, http.StatusNotFound, "Attendance record not found")
		return
	}

	if err := json.NewDecoder(req.Body).Decode(&record); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record.ID = id
	record.OwnerID = ownerID
	if err := r.db.Save(&record).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update attendance record")
		return
	}

	r.notify(ownerID, models.SectionWorkersAttendance, "updated")
	respondJSON(w, http.StatusOK, record)
}

// deleteAttendance deletes an attendance record
func (r *Router) deleteAttendance(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid attendance ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Attendance{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete attendance record")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Attendance record not found")
		return
	}

	r.notify(ownerID, models.SectionWorkersAttendance, "deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Attendance record deleted successfully"})
}
