package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brushhq/paintdesk/internal/models"
)

// listNotes returns notes, optionally filtered by section (?section=jobs)
// and reference (?referenceId=5)
func (r *Router) listNotes(w http.ResponseWriter, req *http.Request) {
	query := r.db.Where("owner_id = ?", owner(req))
	if section := req.URL.Query().Get("section"); section != "" {
		query = query.Where("section = ?", section)
	}
	if refID := req.URL.Query().Get("referenceId"); refID != "" {
		query = query.Where("reference_id = ?", refID)
	}

	var notes []models.Note
	if err := query.Order("id desc").Find(&notes).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

// createNote creates a new note
func (r *Router) createNote(w http.ResponseWriter, req *http.Request) {
	var note models.Note
	if err := json.NewDecoder(req.Body).Decode(&note); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	ownerID := owner(req)

	note.ID = 0
	note.OwnerID = ownerID
	if note.Kind == "" {
		note.Kind = models.NoteKindNote
	}
	if err := r.db.Create(&note).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create note")
		return
	}

	r.notify(ownerID, "notes", "created")
	respondJSON(w, http.StatusCreated, note)
}

// updateNote updates an existing note
func (r *Router) updateNote(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}
	ownerID := owner(req)

	var note models.Note
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&note).Error; err != nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := json.NewDecoder(req.Body).Decode(&note); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	note.ID = id
	note.OwnerID = ownerID
	if err := r.db.Save(&note).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update note")
		return
	}

	r.notify(ownerID, "notes", "updated")
	respondJSON(w, http.StatusOK, note)
}

// deleteNote deletes a note
func (r *Router) deleteNote(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Note{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	r.notify(ownerID, "notes", "deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
