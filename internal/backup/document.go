package backup

import "github.com/brushhq/paintdesk/internal/models"

// Document is the aggregate produced by Export and consumed by Import: one
// list per entity table. On export every row appears verbatim (original ids
// and foreign keys intact). On import every list is optional, row ids and
// owner ids are ignored, and the store assigns fresh ids, so a document's
// ids are only meaningful within the document itself.
type Document struct {
	Customers       []models.Customer       `json:"customers"`
	Jobs            []models.Job            `json:"jobs"`
	Workers         []models.Worker         `json:"workers"`
	Attendance      []models.Attendance     `json:"attendance"`
	Expenses        []models.Expense        `json:"expenses"`
	Inventory       []models.InventoryItem  `json:"inventory"`
	TravelLogs      []models.TravelLog      `json:"travelLogs"`
	Notes           []models.Note           `json:"notes"`
	JobPhotos       []models.JobPhoto       `json:"jobPhotos"`
	WorkerDocuments []models.WorkerDocument `json:"workerDocuments"`
	CustomerPhotos  []models.CustomerPhoto  `json:"customerPhotos"`
}

// Counts returns per-entity row counts, used for backup logs
func (d *Document) Counts() map[string]int {
	return map[string]int{
		"customers":       len(d.Customers),
		"jobs":            len(d.Jobs),
		"workers":         len(d.Workers),
		"attendance":      len(d.Attendance),
		"expenses":        len(d.Expenses),
		"inventory":       len(d.Inventory),
		"travelLogs":      len(d.TravelLogs),
		"notes":           len(d.Notes),
		"jobPhotos":       len(d.JobPhotos),
		"workerDocuments": len(d.WorkerDocuments),
		"customerPhotos":  len(d.CustomerPhotos),
	}
}

// idMap associates an entity's id as it appeared in the input document with
// the id assigned by the store on insert. Built during a single import call,
// never persisted, never shared across calls.
type idMap map[uint]uint

func (m idMap) add(oldID, newID uint) {
	// Zero old ids (rows without an id field) are not recorded: nothing in
	// the document can legitimately reference them.
	if oldID != 0 {
		m[oldID] = newID
	}
}

// remap translates an optional foreign key. Absent or unmappable ids
// degrade to nil, which the optional columns accept.
func (m idMap) remap(old *uint) *uint {
	if old == nil {
		return nil
	}
	if newID, ok := m[*old]; ok {
		return &newID
	}
	return nil
}

// mapForSection selects which id-map a note's ReferenceID resolves against.
// Unknown sections resolve against nothing: the reference is nulled instead
// of guessed.
func mapForSection(section string, customers, jobs, workers idMap) (idMap, bool) {
	switch section {
	case models.SectionJobs, models.SectionWorkersAttendance:
		return jobs, true
	case models.SectionCustomers:
		return customers, true
	case models.SectionWorkers:
		return workers, true
	default:
		return nil, false
	}
}
