package backup

import (
	"os"
	"path/filepath"
	"testing"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brushhq/paintdesk/internal/models"
)

const testPGPort = 5439

// openTestDB boots a throwaway embedded PostgreSQL and migrates the schema.
// Opt-in via PAINTDESK_PG_TESTS=1 because the first run downloads binaries.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("PAINTDESK_PG_TESTS") == "" {
		t.Skip("set PAINTDESK_PG_TESTS=1 to run embedded PostgreSQL tests")
	}

	runtimePath := t.TempDir()
	epg := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Port(testPGPort).
		RuntimePath(runtimePath).
		DataPath(filepath.Join(runtimePath, "data")).
		Database("paintdesk_test"))
	if err := epg.Start(); err != nil {
		t.Fatalf("Failed to start embedded postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := epg.Stop(); err != nil {
			t.Logf("embedded postgres stop: %v", err)
		}
	})

	dsn := "host=localhost port=5439 user=postgres password=postgres dbname=paintdesk_test sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.CustomerPhoto{},
		&models.Job{},
		&models.JobPhoto{},
		&models.Worker{},
		&models.WorkerDocument{},
		&models.Attendance{},
		&models.Expense{},
		&models.InventoryItem{},
		&models.TravelLog{},
		&models.Note{},
		&models.BackupLog{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func uintPtr(v uint) *uint {
	return &v
}

// seedOwner creates a small but fully connected object graph for an owner
// and returns the created rows.
func seedOwner(t *testing.T, db *gorm.DB, ownerID uint) (models.Customer, models.Job, models.Worker) {
	t.Helper()

	customer := models.Customer{OwnerID: ownerID, Name: "Alice", Phone: "555", Address: "1 Rd"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}

	job := models.Job{
		OwnerID:      ownerID,
		CustomerID:   &customer.ID,
		JobCode:      "I001-260829",
		Name:         "Paint hall",
		Category:     "Interior painting",
		Location:     "1 Rd",
		Status:       models.JobStatusInProgress,
		QuotedAmount: 100,
		AgreedAmount: 90,
		PaidAmount:   25,
		StartDate:    "2026-08-01",
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("Failed to seed job: %v", err)
	}

	worker := models.Worker{
		OwnerID:   ownerID,
		Name:      "Bob",
		JobID:     &job.ID,
		Role:      "painter",
		DailyWage: 80,
		IsActive:  true,
		Rating:    4,
	}
	if err := db.Create(&worker).Error; err != nil {
		t.Fatalf("Failed to seed worker: %v", err)
	}

	rows := []interface{}{
		&models.Attendance{OwnerID: ownerID, WorkerID: &worker.ID, JobID: &job.ID, Date: "2026-08-02", Status: models.AttendanceFull, ExtraAllowance: 10},
		&models.Expense{OwnerID: ownerID, JobID: &job.ID, Category: "materials", Description: "Primer", Amount: 40, PaidAmount: 40, PaidFull: true, Date: "2026-08-02"},
		&models.InventoryItem{OwnerID: ownerID, JobID: &job.ID, AssignedToJobID: &job.ID, Name: "White paint", Category: "paint", Quantity: 12, Unit: "l", CostPerUnit: 8},
		&models.TravelLog{OwnerID: ownerID, JobID: &job.ID, Date: "2026-08-02", Kilometers: 14, FuelCost: 6},
		&models.Note{OwnerID: ownerID, Kind: models.NoteKindNote, Section: models.SectionJobs, ReferenceID: &job.ID, Content: "bring ladder"},
		&models.JobPhoto{OwnerID: ownerID, JobID: job.ID, URL: "/uploads/a.jpg", Caption: "before"},
		&models.WorkerDocument{OwnerID: ownerID, WorkerID: worker.ID, URL: "/uploads/b.pdf", Name: "contract"},
		&models.CustomerPhoto{OwnerID: ownerID, CustomerID: customer.ID, URL: "/uploads/c.jpg", Caption: "site"},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("Failed to seed %T: %v", row, err)
		}
	}

	return customer, job, worker
}

func TestImportRemapsForeignKeys(t *testing.T) {
	db := openTestDB(t)

	// The document uses its own id space (customer 1, job 10); the store
	// assigns fresh ids and every edge must point at the right new row.
	doc := &Document{
		Customers: []models.Customer{{ID: 1, Name: "Alice", Phone: "555", Address: "1 Rd"}},
		Jobs: []models.Job{{
			ID:           10,
			CustomerID:   uintPtr(1),
			Category:     "Interior painting",
			Description:  "Paint hall",
			Location:     "1 Rd",
			Status:       models.JobStatusQuoted,
			QuotedAmount: 100,
		}},
		Workers: []models.Worker{{ID: 20, Name: "Bob", JobID: uintPtr(10), IsActive: true}},
		Attendance: []models.Attendance{{
			WorkerID: uintPtr(20), JobID: uintPtr(10), Date: "2026-08-02", Status: models.AttendanceHalf,
		}},
		Inventory: []models.InventoryItem{{
			JobID: uintPtr(10), AssignedToJobID: uintPtr(10), Name: "White paint", Quantity: 5,
		}},
		Notes: []models.Note{
			{Section: models.SectionJobs, ReferenceID: uintPtr(10), Content: "job note"},
			{Section: models.SectionWorkers, ReferenceID: uintPtr(20), Content: "worker note"},
			{Section: "weird_section", ReferenceID: uintPtr(10), Content: "unknown section"},
		},
		JobPhotos: []models.JobPhoto{{JobID: 10, URL: "/uploads/x.jpg"}},
	}

	if err := Import(db, 7, doc); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	var customer models.Customer
	if err := db.Where("owner_id = ?", 7).First(&customer).Error; err != nil {
		t.Fatalf("Customer not imported: %v", err)
	}
	if customer.ID == 1 {
		t.Error("Store should assign a fresh customer id")
	}

	var job models.Job
	if err := db.Where("owner_id = ?", 7).First(&job).Error; err != nil {
		t.Fatalf("Job not imported: %v", err)
	}
	if job.CustomerID == nil || *job.CustomerID != customer.ID {
		t.Errorf("Job customerId = %v, want %d", job.CustomerID, customer.ID)
	}
	if job.JobCode == "" {
		t.Error("Job code should be regenerated on import")
	}
	if job.AgreedAmount != 100 {
		t.Errorf("AgreedAmount should default to QuotedAmount, got %v", job.AgreedAmount)
	}

	var worker models.Worker
	if err := db.Where("owner_id = ?", 7).First(&worker).Error; err != nil {
		t.Fatalf("Worker not imported: %v", err)
	}
	if worker.JobID == nil || *worker.JobID != job.ID {
		t.Errorf("Worker jobId = %v, want %d", worker.JobID, job.ID)
	}

	var attendance models.Attendance
	if err := db.Where("owner_id = ?", 7).First(&attendance).Error; err != nil {
		t.Fatalf("Attendance not imported: %v", err)
	}
	if attendance.WorkerID == nil || *attendance.WorkerID != worker.ID {
		t.Errorf("Attendance workerId = %v, want %d", attendance.WorkerID, worker.ID)
	}
	if attendance.JobID == nil || *attendance.JobID != job.ID {
		t.Errorf("Attendance jobId = %v, want %d", attendance.JobID, job.ID)
	}

	var item models.InventoryItem
	if err := db.Where("owner_id = ?", 7).First(&item).Error; err != nil {
		t.Fatalf("Inventory not imported: %v", err)
	}
	if item.JobID == nil || *item.JobID != job.ID {
		t.Errorf("Inventory jobId = %v, want %d", item.JobID, job.ID)
	}
	if item.AssignedToJobID == nil || *item.AssignedToJobID != job.ID {
		t.Errorf("Inventory assignedToJobId = %v, want %d", item.AssignedToJobID, job.ID)
	}

	var notes []models.Note
	if err := db.Where("owner_id = ?", 7).Order("id").Find(&notes).Error; err != nil {
		t.Fatalf("Notes not imported: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("Expected 3 notes, got %d", len(notes))
	}
	if notes[0].ReferenceID == nil || *notes[0].ReferenceID != job.ID {
		t.Errorf("Job note referenceId = %v, want %d", notes[0].ReferenceID, job.ID)
	}
	if notes[1].ReferenceID == nil || *notes[1].ReferenceID != worker.ID {
		t.Errorf("Worker note referenceId = %v, want %d", notes[1].ReferenceID, worker.ID)
	}
	if notes[2].ReferenceID != nil {
		t.Error("Unknown section should null the reference instead of guessing")
	}

	var photo models.JobPhoto
	if err := db.Where("owner_id = ?", 7).First(&photo).Error; err != nil {
		t.Fatalf("Job photo not imported: %v", err)
	}
	if photo.JobID != job.ID {
		t.Errorf("Job photo jobId = %d, want %d", photo.JobID, job.ID)
	}
}

func TestImportNullsUnmappableOptionalFKsAndSkipsOrphans(t *testing.T) {
	db := openTestDB(t)

	doc := &Document{
		Jobs: []models.Job{{
			ID:         10,
			CustomerID: uintPtr(99), // no customer 99 in the document
			Category:   "Exterior",
		}},
		Workers:         []models.Worker{{ID: 20, Name: "Bob", JobID: uintPtr(55)}}, // no job 55
		JobPhotos:       []models.JobPhoto{{JobID: 10, URL: "/a.jpg"}, {JobID: 77, URL: "/b.jpg"}},
		WorkerDocuments: []models.WorkerDocument{{WorkerID: 66, URL: "/c.pdf"}},
		CustomerPhotos:  []models.CustomerPhoto{{CustomerID: 1, URL: "/d.jpg"}},
	}

	if err := Import(db, 3, doc); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	var job models.Job
	if err := db.Where("owner_id = ?", 3).First(&job).Error; err != nil {
		t.Fatalf("Job not imported: %v", err)
	}
	if job.CustomerID != nil {
		t.Error("Unmappable customerId should degrade to null")
	}

	var worker models.Worker
	if err := db.Where("owner_id = ?", 3).First(&worker).Error; err != nil {
		t.Fatalf("Worker not imported: %v", err)
	}
	if worker.JobID != nil {
		t.Error("Unmappable jobId should degrade to null")
	}

	// Required parents: the mappable photo survives, the orphans are dropped
	var photoCount int64
	db.Model(&models.JobPhoto{}).Where("owner_id = ?", 3).Count(&photoCount)
	if photoCount != 1 {
		t.Errorf("Expected 1 job photo, got %d", photoCount)
	}
	var docCount int64
	db.Model(&models.WorkerDocument{}).Where("owner_id = ?", 3).Count(&docCount)
	if docCount != 0 {
		t.Errorf("Expected 0 worker documents, got %d", docCount)
	}
	var cpCount int64
	db.Model(&models.CustomerPhoto{}).Where("owner_id = ?", 3).Count(&cpCount)
	if cpCount != 0 {
		t.Errorf("Expected 0 customer photos, got %d", cpCount)
	}
}

func TestRoundTrip(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 1)

	before, err := Export(db, 1)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if err := Import(db, 1, before); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	after, err := Export(db, 1)
	if err != nil {
		t.Fatalf("Re-export failed: %v", err)
	}

	// Same shape
	bc, ac := before.Counts(), after.Counts()
	for entity, n := range bc {
		if ac[entity] != n {
			t.Errorf("%s count changed: %d -> %d", entity, n, ac[entity])
		}
	}

	// Same content modulo ids and job code; references stay mutually consistent
	if after.Customers[0].Name != before.Customers[0].Name {
		t.Errorf("Customer name changed: %s", after.Customers[0].Name)
	}
	if after.Customers[0].ID == before.Customers[0].ID {
		t.Log("ids happened to collide; fine, they are not required to change")
	}

	job := after.Jobs[0]
	if job.Name != "Paint hall" || job.Status != models.JobStatusInProgress {
		t.Errorf("Job fields changed: %+v", job)
	}
	if job.QuotedAmount != 100 || job.AgreedAmount != 90 || job.PaidAmount != 25 {
		t.Errorf("Job amounts changed: %v %v %v", job.QuotedAmount, job.AgreedAmount, job.PaidAmount)
	}
	if job.CustomerID == nil || *job.CustomerID != after.Customers[0].ID {
		t.Error("Job should reference the round-tripped customer")
	}

	worker := after.Workers[0]
	if worker.Name != "Bob" || !worker.IsActive || worker.Rating != 4 {
		t.Errorf("Worker fields changed: %+v", worker)
	}
	if worker.JobID == nil || *worker.JobID != job.ID {
		t.Error("Worker should reference the round-tripped job")
	}

	if after.Attendance[0].WorkerID == nil || *after.Attendance[0].WorkerID != worker.ID {
		t.Error("Attendance should reference the round-tripped worker")
	}
	if after.Notes[0].ReferenceID == nil || *after.Notes[0].ReferenceID != job.ID {
		t.Error("Job note should reference the round-tripped job")
	}
	if after.JobPhotos[0].JobID != job.ID {
		t.Error("Job photo should reference the round-tripped job")
	}
	if after.WorkerDocuments[0].WorkerID != worker.ID {
		t.Error("Worker document should reference the round-tripped worker")
	}
	if after.CustomerPhotos[0].CustomerID != after.Customers[0].ID {
		t.Error("Customer photo should reference the round-tripped customer")
	}
}

func TestImportEmptyDocumentWipesOnlyThisOwner(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 1)
	seedOwner(t, db, 2)

	if err := Import(db, 1, &Document{}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	ownerOne, err := Export(db, 1)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	for entity, n := range ownerOne.Counts() {
		if n != 0 {
			t.Errorf("Owner 1 still has %d %s rows", n, entity)
		}
	}

	ownerTwo, err := Export(db, 2)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(ownerTwo.Customers) != 1 || len(ownerTwo.Jobs) != 1 || len(ownerTwo.Workers) != 1 {
		t.Error("Owner 2's data must be untouched")
	}
}

func TestImportRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	customer, job, worker := seedOwner(t, db, 1)

	// Two workers with the same name violate the per-owner unique index
	// partway through the insert phase.
	doc := &Document{
		Customers: []models.Customer{{ID: 1, Name: "Mallory"}},
		Jobs:      []models.Job{{ID: 2, CustomerID: uintPtr(1), Category: "Interior"}},
		Workers: []models.Worker{
			{ID: 3, Name: "Dup", JobID: uintPtr(2)},
			{ID: 4, Name: "Dup"},
		},
	}

	if err := Import(db, 1, doc); err == nil {
		t.Fatal("Import should fail on the duplicate worker name")
	}

	// Prior state must be fully intact: nothing deleted, nothing inserted
	snapshot, err := Export(db, 1)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(snapshot.Customers) != 1 || snapshot.Customers[0].ID != customer.ID {
		t.Error("Pre-import customer should survive the rollback")
	}
	if len(snapshot.Jobs) != 1 || snapshot.Jobs[0].ID != job.ID {
		t.Error("Pre-import job should survive the rollback")
	}
	if len(snapshot.Workers) != 1 || snapshot.Workers[0].ID != worker.ID {
		t.Error("Pre-import worker should survive the rollback")
	}
	if snapshot.Workers[0].Name != "Bob" {
		t.Errorf("Worker name = %s, want Bob", snapshot.Workers[0].Name)
	}
	if len(snapshot.JobPhotos) != 1 || len(snapshot.WorkerDocuments) != 1 || len(snapshot.CustomerPhotos) != 1 {
		t.Error("Pre-import child rows should survive the rollback")
	}
}

func TestTenantIsolationOnExport(t *testing.T) {
	db := openTestDB(t)
	seedOwner(t, db, 1)
	seedOwner(t, db, 2)

	doc, err := Export(db, 1)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	for _, c := range doc.Customers {
		if c.OwnerID != 1 {
			t.Errorf("Export leaked customer of owner %d", c.OwnerID)
		}
	}
	if len(doc.Customers) != 1 {
		t.Errorf("Expected exactly 1 customer, got %d", len(doc.Customers))
	}
}
