package handlers

import (
	"fmt"
	"net/http"

	"github.com/brushhq/paintdesk/internal/models"
	"github.com/brushhq/paintdesk/internal/services/report"
)

// jobReport renders the one-page PDF summary for a job
func (r *Router) jobReport(w http.ResponseWriter, req *http.Request) {
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

	summary := report.JobSummary{Job: job}

	if job.CustomerID != nil {
		var customer models.Customer
		if err := r.db.Where("id = ? AND owner_id = ?", *job.CustomerID, ownerID).First(&customer).Error; err == nil {
			summary.Customer = &customer
		}
	}

	var expenseTotal float64
	r.db.Model(&models.Expense{}).
		Where("job_id = ? AND owner_id = ?", id, ownerID).
		Select("COALESCE(SUM(amount), 0)").Scan(&expenseTotal)
	summary.ExpenseTotal = expenseTotal

	var photoCount int64
	r.db.Model(&models.JobPhoto{}).Where("job_id = ? AND owner_id = ?", id, ownerID).Count(&photoCount)
	summary.PhotoCount = int(photoCount)

	var workerCount int64
	r.db.Model(&models.Worker{}).Where("job_id = ? AND owner_id = ?", id, ownerID).Count(&workerCount)
	summary.WorkerCount = int(workerCount)

	pdf, err := report.GenerateJobPDF(summary)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", job.JobCode+".pdf"))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
