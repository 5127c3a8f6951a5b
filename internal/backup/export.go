package backup

import (
	"gorm.io/gorm"
)

// Export reads every row belonging to ownerID across all entity tables and
// returns them as one document, verbatim: original ids intact, foreign keys
// as stored, no pagination, no redaction. The reads run inside a single
// transaction so the document is a consistent snapshot.
func Export(db *gorm.DB, ownerID uint) (*Document, error) {
	doc := &Document{}

	err := db.Transaction(func(tx *gorm.DB) error {
		owned := func(dest interface{}) error {
			return tx.Where("owner_id = ?", ownerID).Order("id").Find(dest).Error
		}

		if err := owned(&doc.Customers); err != nil {
			return err
		}
		if err := owned(&doc.Jobs); err != nil {
			return err
		}
		if err := owned(&doc.Workers); err != nil {
			return err
		}
		if err := owned(&doc.Attendance); err != nil {
			return err
		}
		if err := owned(&doc.Expenses); err != nil {
			return err
		}
		if err := owned(&doc.Inventory); err != nil {
			return err
		}
		if err := owned(&doc.TravelLogs); err != nil {
			return err
		}
		if err := owned(&doc.Notes); err != nil {
			return err
		}
		if err := owned(&doc.JobPhotos); err != nil {
			return err
		}
		if err := owned(&doc.WorkerDocuments); err != nil {
			return err
		}
		return owned(&doc.CustomerPhotos)
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}
