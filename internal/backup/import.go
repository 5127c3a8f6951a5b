package backup

import (
	"time"

	"gorm.io/gorm"

	"github.com/brushhq/paintdesk/internal/models"
	"github.com/brushhq/paintdesk/internal/utils"
)

// Import atomically replaces all of ownerID's data with the document's
// contents: every existing row of the owner is deleted (children first),
// then the document's rows are inserted (parents first) with every
// cross-entity foreign key translated from the document's ids to the ids the
// store assigns on insert. Runs as one transaction; on any failure the
// owner's prior data is left exactly as it was.
//
// Optional foreign keys that cannot be mapped (the parent was absent from
// the document) degrade to null. Photo and document rows, whose parent is
// required, are skipped entirely when the parent cannot be mapped.
func Import(db *gorm.DB, ownerID uint, doc *Document) error {
	if doc == nil {
		doc = &Document{}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := deleteOwnerData(tx, ownerID); err != nil {
			return err
		}
		return insertOwnerData(tx, ownerID, doc)
	})
}

// deleteOwnerData removes every existing row of the owner, child tables
// before parents. Hard deletes: a restore must not leave soft-deleted rows
// behind to collide with re-inserted data.
func deleteOwnerData(tx *gorm.DB, ownerID uint) error {
	tables := []interface{}{
		&models.JobPhoto{},
		&models.WorkerDocument{},
		&models.CustomerPhoto{},
		&models.Attendance{},
		&models.InventoryItem{},
		&models.TravelLog{},
		&models.Expense{},
		&models.Note{},
		&models.Worker{},
		&models.Job{},
		&models.Customer{},
	}

	for _, table := range tables {
		if err := tx.Unscoped().Where("owner_id = ?", ownerID).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

// insertOwnerData replays the document under the target owner, strictly in
// dependency order, building the three id-maps as it goes.
func insertOwnerData(tx *gorm.DB, ownerID uint, doc *Document) error {
	customerIDs := make(idMap, len(doc.Customers))
	jobIDs := make(idMap, len(doc.Jobs))
	workerIDs := make(idMap, len(doc.Workers))

	// Customers (root)
	for _, c := range doc.Customers {
		fresh := models.Customer{
			OwnerID: ownerID,
			Name:    c.Name,
			Phone:   c.Phone,
			Address: c.Address,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
		customerIDs.add(c.ID, fresh.ID)
	}

	// Jobs. Job codes are regenerated: the code embeds a per-owner ordinal
	// that cannot be replayed after renumbering, so the counter restarts from
	// the (now empty) owner's job list and the import date is used.
	now := time.Now().UTC()
	for i, j := range doc.Jobs {
		agreed := j.AgreedAmount
		if agreed == 0 {
			agreed = j.QuotedAmount
		}
		status := j.Status
		if status == "" {
			status = models.JobStatusQuoted
		}
		fresh := models.Job{
			OwnerID:      ownerID,
			CustomerID:   customerIDs.remap(j.CustomerID),
			JobCode:      utils.GenerateJobCode(i+1, j.Category, now),
			Name:         j.Name,
			Category:     j.Category,
			Description:  j.Description,
			Location:     j.Location,
			Status:       status,
			QuotedAmount: j.QuotedAmount,
			AgreedAmount: agreed,
			PaidAmount:   j.PaidAmount,
			StartDate:    j.StartDate,
			EndDate:      j.EndDate,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
		jobIDs.add(j.ID, fresh.ID)
	}

	// Workers
	for _, w := range doc.Workers {
		fresh := models.Worker{
			OwnerID:   ownerID,
			Name:      w.Name,
			JobID:     jobIDs.remap(w.JobID),
			Role:      w.Role,
			Phone:     w.Phone,
			Address:   w.Address,
			DailyWage: w.DailyWage,
			IsActive:  w.IsActive,
			Rating:    w.Rating,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
		workerIDs.add(w.ID, fresh.ID)
	}

	// Expenses
	for _, e := range doc.Expenses {
		fresh := models.Expense{
			OwnerID:     ownerID,
			JobID:       jobIDs.remap(e.JobID),
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			PaidAmount:  e.PaidAmount,
			PaidFull:    e.PaidFull,
			Date:        e.Date,
			IsRequired:  e.IsRequired,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
	}

	// Inventory. Origin job and current assignment are independent
	// relations; each is remapped on its own and may come out nil.
	for _, item := range doc.Inventory {
		fresh := models.InventoryItem{
			OwnerID:         ownerID,
			JobID:           jobIDs.remap(item.JobID),
			AssignedToJobID: jobIDs.remap(item.AssignedToJobID),
			Name:            item.Name,
			Category:        item.Category,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			CostPerUnit:     item.CostPerUnit,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
	}

	// Travel logs
	for _, tl := range doc.TravelLogs {
		fresh := models.TravelLog{
			OwnerID:    ownerID,
			JobID:      jobIDs.remap(tl.JobID),
			Date:       tl.Date,
			Kilometers: tl.Kilometers,
			FuelCost:   tl.FuelCost,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
	}

	// Notes. The section tag decides which id-map the polymorphic reference
	// resolves against; unknown sections lose the reference.
	for _, n := range doc.Notes {
		kind := n.Kind
		if kind == "" {
			kind = models.NoteKindNote
		}
		fresh := models.Note{
			OwnerID:   ownerID,
			Kind:      kind,
			Section:   n.Section,
			Attribute: n.Attribute,
			Content:   n.Content,
		}
		if refMap, ok := mapForSection(n.Section, customerIDs, jobIDs, workerIDs); ok {
			fresh.ReferenceID = refMap.remap(n.ReferenceID)
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
	}

	// Attendance
	for _, a := range doc.Attendance {
		status := a.Status
		if status == "" {
			status = models.AttendanceFull
		}
		fresh := models.Attendance{
			OwnerID:        ownerID,
			WorkerID:       workerIDs.remap(a.WorkerID),
			JobID:          jobIDs.remap(a.JobID),
			Date:           a.Date,
			Status:         status,
			ExtraAllowance: a.ExtraAllowance,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
	}

	// Photos and documents require a live parent; rows whose parent was not
	// part of the document are dropped rather than imported dangling.
	for _, p := range doc.JobPhotos {
		jobID, ok := jobIDs[p.JobID]
		if !ok {
			continue
		}
		fresh := models.JobPhoto{
			OwnerID: ownerID,
			JobID:   jobID,
			URL:     p.URL,
			Caption: p.Caption,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
	}

	for _, d := range doc.WorkerDocuments {
		workerID, ok := workerIDs[d.WorkerID]
		if !ok {
			continue
		}
		fresh := models.WorkerDocument{
			OwnerID:  ownerID,
			WorkerID: workerID,
			URL:      d.URL,
			Name:     d.Name,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
	}

	for _, p := range doc.CustomerPhotos {
		customerID, ok := customerIDs[p.CustomerID]
		if !ok {
			continue
		}
		fresh := models.CustomerPhoto{
			OwnerID:    ownerID,
			CustomerID: customerID,
			URL:        p.URL,
			Caption:    p.Caption,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
	}

	return nil
}
