package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/brushhq/paintdesk/internal/buildinfo"
	"github.com/brushhq/paintdesk/internal/config"
	"github.com/brushhq/paintdesk/internal/database"
	"github.com/brushhq/paintdesk/internal/middleware"
	ws "github.com/brushhq/paintdesk/internal/websocket"
)

// Router wraps the mux router with the database, config and change-feed hub
type Router struct {
	*mux.Router
	db  *database.DB
	cfg *config.Config
	hub *ws.Hub
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, hub *ws.Hub) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		db:     db,
		cfg:    cfg,
		hub:    hub,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")
	r.HandleFunc("/api/status", r.getStatus).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")

	// Change feed (token authenticated in the handler, not the middleware,
	// because browsers cannot set headers on websocket dials)
	r.HandleFunc("/ws", r.serveWS).Methods("GET")

	// Everything below requires a valid token; the middleware puts the
	// owner id into the request context and every handler scopes with it.
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))

	// Customers
	api.HandleFunc("/customers", r.listCustomers).Methods("GET")
	api.HandleFunc("/customers", r.createCustomer).Methods("POST")
	api.HandleFunc("/customers/{id}", r.getCustomer).Methods("GET")
	api.HandleFunc("/customers/{id}", r.updateCustomer).Methods("PUT")
	api.HandleFunc("/customers/{id}", r.deleteCustomer).Methods("DELETE")
	api.HandleFunc("/customers/{id}/photos", r.listCustomerPhotos).Methods("GET")
	api.HandleFunc("/customers/{id}/photos", r.createCustomerPhoto).Methods("POST")
	api.HandleFunc("/customer-photos/{id}", r.deleteCustomerPhoto).Methods("DELETE")

	// Jobs
	api.HandleFunc("/jobs", r.listJobs).Methods("GET")
	api.HandleFunc("/jobs", r.createJob).Methods("POST")
	api.HandleFunc("/jobs/{id}", r.getJob).Methods("GET")
	api.HandleFunc("/jobs/{id}", r.updateJob).Methods("PUT")
	api.HandleFunc("/jobs/{id}", r.deleteJob).Methods("DELETE")
	api.HandleFunc("/jobs/{id}/photos", r.listJobPhotos).Methods("GET")
	api.HandleFunc("/jobs/{id}/photos", r.createJobPhoto).Methods("POST")
	api.HandleFunc("/jobs/{id}/report", r.jobReport).Methods("GET")
	api.HandleFunc("/job-photos/{id}", r.deleteJobPhoto).Methods("DELETE")

	// Workers
	api.HandleFunc("/workers", r.listWorkers).Methods("GET")
	api.HandleFunc("/workers", r.createWorker).Methods("POST")
	api.HandleFunc("/workers/{id}", r.getWorker).Methods("GET")
	api.HandleFunc("/workers/{id}", r.updateWorker).Methods("PUT")
	api.HandleFunc("/workers/{id}", r.deleteWorker).Methods("DELETE")
	api.HandleFunc("/workers/{id}/documents", r.listWorkerDocuments).Methods("GET")
	api.HandleFunc("/workers/{id}/documents", r.createWorkerDocument).Methods("POST")
	api.HandleFunc("/worker-documents/{id}", r.deleteWorkerDocument).Methods("DELETE")

	// Attendance
	api.HandleFunc("/attendance", r.listAttendance).Methods("GET")
	api.HandleFunc("/attendance", r.createAttendance).Methods("POST")
	api.HandleFunc("/attendance/{id}", r.updateAttendance).Methods("PUT")
	api.HandleFunc("/attendance/{id}", r.deleteAttendance).Methods("DELETE")

	// Expenses
	api.HandleFunc("/expenses", r.listExpenses).Methods("GET")
	api.HandleFunc("/expenses", r.createExpense).Methods("POST")
	api.HandleFunc("/expenses/{id}", r.getExpense).Methods("GET")
	api.HandleFunc("/expenses/{id}", r.updateExpense).Methods("PUT")
	api.HandleFunc("/expenses/{id}", r.deleteExpense).Methods("DELETE")

	// Inventory
	api.HandleFunc("/inventory", r.listInventory).Methods("GET")
	api.HandleFunc("/inventory", r.createInventoryItem).Methods("POST")
	api.HandleFunc("/inventory/{id}", r.getInventoryItem).Methods("GET")
	api.HandleFunc("/inventory/{id}", r.updateInventoryItem).Methods("PUT")
	api.HandleFunc("/inventory/{id}", r.deleteInventoryItem).Methods("DELETE")

	// Travel logs
	api.HandleFunc("/travel-logs", r.listTravelLogs).Methods("GET")
	api.HandleFunc("/travel-logs", r.createTravelLog).Methods("POST")
	api.HandleFunc("/travel-logs/{id}", r.updateTravelLog).Methods("PUT")
	api.HandleFunc("/travel-logs/{id}", r.deleteTravelLog).Methods("DELETE")

	// Notes
	api.HandleFunc("/notes", r.listNotes).Methods("GET")
	api.HandleFunc("/notes", r.createNote).Methods("POST")
	api.HandleFunc("/notes/{id}", r.updateNote).Methods("PUT")
	api.HandleFunc("/notes/{id}", r.deleteNote).Methods("DELETE")

	// Backup / restore
	api.HandleFunc("/backup/export", r.exportBackup).Methods("GET")
	api.HandleFunc("/backup/import", r.importBackup).Methods("POST")
	api.HandleFunc("/backup/history", r.backupHistory).Methods("GET")

	// File uploads
	api.HandleFunc("/uploads", r.uploadFile).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getStatus returns build information
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":     "running",
		"buildTime":  buildinfo.BuildTime,
		"commitHash": buildinfo.CommitHash,
		"startTime":  buildinfo.StartTime,
	})
}

// serveWS authenticates the token query parameter and attaches the
// connection to the change-feed hub
func (r *Router) serveWS(w http.ResponseWriter, req *http.Request) {
	if r.hub == nil {
		respondError(w, http.StatusServiceUnavailable, "Change feed not available")
		return
	}

	ownerID, err := validateWSToken(req.URL.Query().Get("token"), r.cfg.JWTSecret)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	ws.ServeWS(r.hub, w, req, ownerID)
}

// notify pushes a change event to the owner's connected clients
func (r *Router) notify(ownerID uint, section, action string) {
	if r.hub != nil {
		r.hub.NotifyOwner(ownerID, section, action)
	}
}

// owner pulls the authenticated owner id placed by the auth middleware
func owner(req *http.Request) uint {
	id, _ := middleware.OwnerID(req)
	return id
}

// pathID parses the {id} route variable
func pathID(req *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(req)["id"], 10, 32)
	return uint(id), err
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
