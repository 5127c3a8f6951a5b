package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/brushhq/paintdesk/internal/models"
)

// listInventory returns all inventory items of the authenticated owner
func (r *Router) listInventory(w http.ResponseWriter, req *http.Request) {
	var items []models.InventoryItem
	if err := r.db.Where("owner_id = ?", owner(req)).Order("id desc").Find(&items).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch inventory")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// getInventoryItem returns a single inventory item by ID
func (r *Router) getInventoryItem(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var item models.InventoryItem
	if err := r.db.Where("id = ? AND owner_id = ?", id, owner(req)).First(&item).Error; err != nil {
		respondError(w, http.StatusNotFound, "Inventory item not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// createInventoryItem creates a new inventory item
func (r *Router) createInventoryItem(w http.ResponseWriter, req *http.Request) {
	var item models.InventoryItem
	if err := json.NewDecoder(req.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	ownerID := owner(req)

	item.ID = 0
	item.OwnerID = ownerID
	if err := r.db.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}

	r.notify(ownerID, models.SectionInventory, "created")
	respondJSON(w, http.StatusCreated, item)
}

// updateInventoryItem updates an inventory item. Quantity and assignment
// changes leave an audit trail: each one appends a log Note describing the
// transition, written in the same transaction as the update itself.
func (r *Router) updateInventoryItem(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}
	ownerID := owner(req)

	var item models.InventoryItem
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&item).Error; err != nil {
		respondError(w, http.StatusNotFound, "Inventory item not found")
		return
	}
	prevQuantity := item.Quantity
	prevAssigned := item.AssignedToJobID

	if err := json.NewDecoder(req.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item.ID = id
	item.OwnerID = ownerID
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		if item.Quantity != prevQuantity {
			if err := tx.Create(inventoryAuditNote(&item, "quantity",
				fmt.Sprintf("%s: quantity %g -> %g", item.Name, prevQuantity.Float64(), item.Quantity.Float64()))).Error; err != nil {
				return err
			}
		}
		if !sameJobRef(prevAssigned, item.AssignedToJobID) {
			if err := tx.Create(inventoryAuditNote(&item, "assignedToJob",
				fmt.Sprintf("%s: assigned job %s -> %s", item.Name, jobRef(prevAssigned), jobRef(item.AssignedToJobID)))).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}

	r.notify(ownerID, models.SectionInventory, "updated")
	respondJSON(w, http.StatusOK, item)
}

// deleteInventoryItem deletes an inventory item
func (r *Router) deleteInventoryItem(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.InventoryItem{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Inventory item not found")
		return
	}

	r.notify(ownerID, models.SectionInventory, "deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Inventory item deleted successfully"})
}

func inventoryAuditNote(item *models.InventoryItem, attribute, content string) *models.Note {
	itemID := item.ID
	attr := attribute
	return &models.Note{
		OwnerID:     item.OwnerID,
		Kind:        models.NoteKindLog,
		Section:     models.SectionInventory,
		ReferenceID: &itemID,
		Attribute:   &attr,
		Content:     content,
	}
}

func sameJobRef(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func jobRef(id *uint) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("#%d", *id)
}
