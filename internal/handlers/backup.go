package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gorm.io/datatypes"

	"github.com/brushhq/paintdesk/internal/backup"
	"github.com/brushhq/paintdesk/internal/models"
)

// exportBackup streams the owner's full dataset as one JSON document,
// suitable for download and for later import
func (r *Router) exportBackup(w http.ResponseWriter, req *http.Request) {
	ownerID := owner(req)

	doc, err := backup.Export(r.db.DB, ownerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to export data")
		return
	}

	r.logBackup(ownerID, models.BackupActionExport, doc.Counts())

	filename := fmt.Sprintf("paintdesk-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(doc)
}

// importBackup replaces the owner's entire dataset with the uploaded
// document. The operation is atomic: either everything is replaced or
// nothing changes.
func (r *Router) importBackup(w http.ResponseWriter, req *http.Request) {
	ownerID := owner(req)

	var doc backup.Document
	if err := json.NewDecoder(req.Body).Decode(&doc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid backup document")
		return
	}

	if err := backup.Import(r.db.DB, ownerID, &doc); err != nil {
		respondError(w, http.StatusInternalServerError, "Import failed, no data was changed")
		return
	}

	counts := doc.Counts()
	r.logBackup(ownerID, models.BackupActionImport, counts)

	// Everything changed at once; one event per section would just be noise
	r.notify(ownerID, "all", "imported")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Import completed successfully",
		"counts":  counts,
	})
}

// backupHistory returns the owner's past export and import runs, newest first
func (r *Router) backupHistory(w http.ResponseWriter, req *http.Request) {
	var logs []models.BackupLog
	if err := r.db.Where("owner_id = ?", owner(req)).Order("id desc").Limit(50).Find(&logs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch backup history")
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

// logBackup records a backup run. Logging is best effort and never fails the
// operation itself.
func (r *Router) logBackup(ownerID uint, action string, counts map[string]int) {
	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}
	r.db.Create(&models.BackupLog{
		OwnerID: ownerID,
		Action:  action,
		Counts:  datatypes.JSON(raw),
	})
}
