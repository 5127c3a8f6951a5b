package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brushhq/paintdesk/internal/models"
)

// listCustomers returns all customers of the authenticated owner
func (r *Router) listCustomers(w http.ResponseWriter, req *http.Request) {
	var customers []models.Customer
	if err := r.db.Where("owner_id = ?", owner(req)).Order("id desc").Find(&customers).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

// getCustomer returns a single customer by ID
func (r *Router) getCustomer(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var customer models.Customer
	if err := r.db.Where("id = ? AND owner_id = ?", id, owner(req)).First(&customer).Error; err != nil {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// createCustomer creates a new customer
func (r *Router) createCustomer(w http.ResponseWriter, req *http.Request) {
	var customer models.Customer
	if err := json.NewDecoder(req.Body).Decode(&customer); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	customer.ID = 0
	customer.OwnerID = owner(req)
	if err := r.db.Create(&customer).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	r.notify(customer.OwnerID, models.SectionCustomers, "created")
	respondJSON(w, http.StatusCreated, customer)
}

// updateCustomer updates an existing customer
func (r *Router) updateCustomer(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	ownerID := owner(req)

	var customer models.Customer
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&customer).Error; err != nil {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}

	if err := json.NewDecoder(req.Body).Decode(&customer); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Identity fields are never client-writable
	customer.ID = id
	customer.OwnerID = ownerID
	if err := r.db.Save(&customer).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	r.notify(ownerID, models.SectionCustomers, "updated")
	respondJSON(w, http.StatusOK, customer)
}

// deleteCustomer deletes a customer
func (r *Router) deleteCustomer(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	ownerID := owner(req)

	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Customer{})
	if res.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}

	r.notify(ownerID, models.SectionCustomers, "deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
