package main

import (
	"fmt"
	"log"
	"time"

	"github.com/brushhq/paintdesk/internal/config"
	"github.com/brushhq/paintdesk/internal/database"
	"github.com/brushhq/paintdesk/internal/models"
	"github.com/brushhq/paintdesk/internal/utils"
)

// Seeds a demo owner account with a small but fully connected dataset:
// customers with jobs, workers assigned to jobs, attendance, expenses,
// inventory and notes. Useful for trying the API and the export format.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("running database migrations...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Job{},
		&models.Worker{},
		&models.Attendance{},
		&models.Expense{},
		&models.InventoryItem{},
		&models.TravelLog{},
		&models.Note{},
		&models.JobPhoto{},
		&models.WorkerDocument{},
		&models.CustomerPhoto{},
		&models.BackupLog{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Refuse to double-seed
	var existing int64
	db.Model(&models.User{}).Where("username = ?", "demo").Count(&existing)
	if existing > 0 {
		fmt.Println("demo user already exists, nothing to do")
		fmt.Println("log in with demo / demo1234")
		return
	}

	hashed, err := utils.HashPassword("demo1234")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	owner := models.User{Username: "demo", Password: hashed, Name: "Demo Painter"}
	if err := db.Create(&owner).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("created demo user (id %d)", owner.ID)

	// Customers
	customers := []models.Customer{
		{OwnerID: owner.ID, Name: "Meera Apartments", Phone: "+91 98450 11111", Address: "12 Lake View Road"},
		{OwnerID: owner.ID, Name: "Ravi Kumar", Phone: "+91 98450 22222", Address: "4 Temple Street"},
		{OwnerID: owner.ID, Name: "Sunrise School", Phone: "+91 98450 33333", Address: "Sunrise Campus, NH 44"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			log.Fatalf("Failed to create customer: %v", err)
		}
	}
	log.Printf("created %d customers", len(customers))

	// Jobs
	now := time.Now().UTC()
	jobs := []models.Job{
		{
			OwnerID:      owner.ID,
			CustomerID:   &customers[0].ID,
			JobCode:      utils.GenerateJobCode(1, "Interior", now),
			Name:         "Block A interior repaint",
			Category:     "Interior",
			Location:     customers[0].Address,
			Status:       models.JobStatusInProgress,
			QuotedAmount: 85000,
			AgreedAmount: 80000,
			PaidAmount:   40000,
			StartDate:    now.AddDate(0, 0, -10).Format("2006-01-02"),
		},
		{
			OwnerID:      owner.ID,
			CustomerID:   &customers[1].ID,
			JobCode:      utils.GenerateJobCode(2, "Exterior", now),
			Name:         "House exterior, two coats",
			Category:     "Exterior",
			Location:     customers[1].Address,
			Status:       models.JobStatusQuoted,
			QuotedAmount: 42000,
			AgreedAmount: 42000,
		},
		{
			OwnerID:      owner.ID,
			CustomerID:   &customers[2].ID,
			JobCode:      utils.GenerateJobCode(3, "Waterproofing", now),
			Name:         "Roof waterproofing",
			Category:     "Waterproofing",
			Location:     customers[2].Address,
			Status:       models.JobStatusCompleted,
			QuotedAmount: 30000,
			AgreedAmount: 28000,
			PaidAmount:   28000,
			StartDate:    now.AddDate(0, -1, 0).Format("2006-01-02"),
			EndDate:      now.AddDate(0, 0, -20).Format("2006-01-02"),
		},
	}
	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			log.Fatalf("Failed to create job: %v", err)
		}
	}
	log.Printf("created %d jobs", len(jobs))

	// Workers
	workers := []models.Worker{
		{OwnerID: owner.ID, Name: "Suresh", JobID: &jobs[0].ID, Role: "painter", DailyWage: 900, IsActive: true, Rating: 4},
		{OwnerID: owner.ID, Name: "Manoj", JobID: &jobs[0].ID, Role: "painter", DailyWage: 850, IsActive: true, Rating: 3},
		{OwnerID: owner.ID, Name: "Arul", Role: "helper", DailyWage: 600, IsActive: false, Rating: 5},
	}
	for i := range workers {
		if err := db.Create(&workers[i]).Error; err != nil {
			log.Fatalf("Failed to create worker: %v", err)
		}
	}
	log.Printf("created %d workers", len(workers))

	// A week of attendance for the active crew
	var attendanceCount int
	for day := 0; day < 7; day++ {
		date := now.AddDate(0, 0, -day).Format("2006-01-02")
		for i := range workers[:2] {
			status := models.AttendanceFull
			if day == 3 && i == 1 {
				status = models.AttendanceHalf
			}
			record := models.Attendance{
				OwnerID:  owner.ID,
				WorkerID: &workers[i].ID,
				JobID:    &jobs[0].ID,
				Date:     date,
				Status:   status,
			}
			if err := db.Create(&record).Error; err != nil {
				log.Fatalf("Failed to create attendance: %v", err)
			}
			attendanceCount++
		}
	}
	log.Printf("created %d attendance records", attendanceCount)

	// Expenses
	expenses := []models.Expense{
		{OwnerID: owner.ID, JobID: &jobs[0].ID, Category: "materials", Description: "20L emulsion, primer", Amount: 14500, PaidAmount: 14500, PaidFull: true, Date: now.AddDate(0, 0, -9).Format("2006-01-02")},
		{OwnerID: owner.ID, JobID: &jobs[0].ID, Category: "equipment", Description: "Scaffolding rental", Amount: 3000, Date: now.AddDate(0, 0, -8).Format("2006-01-02")},
		{OwnerID: owner.ID, Category: "fuel", Description: "Site visits", Amount: 1200, PaidAmount: 1200, PaidFull: true, Date: now.AddDate(0, 0, -2).Format("2006-01-02")},
	}
	for i := range expenses {
		if err := db.Create(&expenses[i]).Error; err != nil {
			log.Fatalf("Failed to create expense: %v", err)
		}
	}
	log.Printf("created %d expenses", len(expenses))

	// Inventory
	items := []models.InventoryItem{
		{OwnerID: owner.ID, JobID: &jobs[0].ID, AssignedToJobID: &jobs[0].ID, Name: "White emulsion", Category: "paint", Quantity: 40, Unit: "L", CostPerUnit: 310},
		{OwnerID: owner.ID, Name: "Rollers", Category: "tools", Quantity: 12, Unit: "pcs", CostPerUnit: 150},
		{OwnerID: owner.ID, AssignedToJobID: &jobs[0].ID, Name: "Extension ladder", Category: "tools", Quantity: 2, Unit: "pcs", CostPerUnit: 4500},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Fatalf("Failed to create inventory item: %v", err)
		}
	}
	log.Printf("created %d inventory items", len(items))

	// Travel
	travel := models.TravelLog{
		OwnerID: owner.ID, JobID: &jobs[0].ID,
		Date: now.Format("2006-01-02"), Kilometers: 14.5, FuelCost: 210,
	}
	if err := db.Create(&travel).Error; err != nil {
		log.Fatalf("Failed to create travel log: %v", err)
	}

	// Notes
	notes := []models.Note{
		{OwnerID: owner.ID, Kind: models.NoteKindNote, Section: models.SectionJobs, ReferenceID: &jobs[0].ID, Content: "Customer wants ceiling done first"},
		{OwnerID: owner.ID, Kind: models.NoteKindNote, Section: models.SectionCustomers, ReferenceID: &customers[1].ID, Content: "Prefers calls after 6pm"},
	}
	for i := range notes {
		if err := db.Create(&notes[i]).Error; err != nil {
			log.Fatalf("Failed to create note: %v", err)
		}
	}
	log.Printf("created %d notes", len(notes))

	fmt.Println()
	fmt.Println("Demo data created successfully.")
	fmt.Println("Start the server:  go run ./cmd/api")
	fmt.Println("Log in with:       demo / demo1234")
}
