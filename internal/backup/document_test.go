package backup

import (
	"encoding/json"
	"testing"

	"github.com/brushhq/paintdesk/internal/models"
)

func TestMapForSection(t *testing.T) {
	customers := idMap{1: 101}
	jobs := idMap{2: 202}
	workers := idMap{3: 303}

	testCases := []struct {
		section string
		want    idMap
		ok      bool
	}{
		{"jobs", jobs, true},
		{"workers_attendance", jobs, true},
		{"customers", customers, true},
		{"workers", workers, true},
		{"inventory", nil, false},
		{"something_else", nil, false},
		{"", nil, false},
	}

	for _, tc := range testCases {
		got, ok := mapForSection(tc.section, customers, jobs, workers)
		if ok != tc.ok {
			t.Errorf("mapForSection(%q) ok = %v, want %v", tc.section, ok, tc.ok)
			continue
		}
		if tc.ok && len(got) != len(tc.want) {
			t.Errorf("mapForSection(%q) returned wrong map", tc.section)
		}
		for k, v := range tc.want {
			if got[k] != v {
				t.Errorf("mapForSection(%q)[%d] = %d, want %d", tc.section, k, got[k], v)
			}
		}
	}
}

func TestIDMapRemap(t *testing.T) {
	m := idMap{5: 50}

	// Known id translates
	five := uint(5)
	if got := m.remap(&five); got == nil || *got != 50 {
		t.Errorf("remap(5) = %v, want 50", got)
	}

	// Unknown id degrades to nil
	nine := uint(9)
	if got := m.remap(&nine); got != nil {
		t.Errorf("remap(9) = %d, want nil", *got)
	}

	// Absent FK stays nil
	if got := m.remap(nil); got != nil {
		t.Errorf("remap(nil) = %d, want nil", *got)
	}
}

func TestIDMapAddIgnoresZero(t *testing.T) {
	m := make(idMap)
	m.add(0, 77)
	if len(m) != 0 {
		t.Error("zero old ids should not be recorded")
	}
	m.add(4, 44)
	if m[4] != 44 {
		t.Errorf("m[4] = %d, want 44", m[4])
	}
}

// Documents come from clients and may be hand-edited: lists can be absent,
// and decimal fields can be numbers or numeric strings.
func TestDocumentDecodeTolerant(t *testing.T) {
	raw := `{
		"customers": [{"id": 1, "name": "Alice", "phone": "555", "address": "1 Rd"}],
		"jobs": [{"id": 10, "customerId": 1, "category": "Interior painting", "quotedAmount": "100", "paidAmount": 25.5, "status": "quoted"}]
	}`

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Failed to decode document: %v", err)
	}

	if len(doc.Customers) != 1 || len(doc.Jobs) != 1 {
		t.Fatalf("Expected 1 customer and 1 job, got %d and %d", len(doc.Customers), len(doc.Jobs))
	}
	if doc.Workers != nil && len(doc.Workers) != 0 {
		t.Error("Absent worker list should decode as empty")
	}

	job := doc.Jobs[0]
	if job.QuotedAmount != models.Decimal(100) {
		t.Errorf("quotedAmount = %v, want 100 (string form)", job.QuotedAmount)
	}
	if job.PaidAmount != models.Decimal(25.5) {
		t.Errorf("paidAmount = %v, want 25.5 (number form)", job.PaidAmount)
	}
	if job.CustomerID == nil || *job.CustomerID != 1 {
		t.Error("customerId should decode")
	}
}

func TestDocumentCounts(t *testing.T) {
	doc := &Document{
		Customers: []models.Customer{{Name: "A"}, {Name: "B"}},
		Notes:     []models.Note{{Content: "x"}},
	}

	counts := doc.Counts()
	if counts["customers"] != 2 {
		t.Errorf("customers count = %d, want 2", counts["customers"])
	}
	if counts["notes"] != 1 {
		t.Errorf("notes count = %d, want 1", counts["notes"])
	}
	if counts["jobs"] != 0 {
		t.Errorf("jobs count = %d, want 0", counts["jobs"])
	}
	if len(counts) != 11 {
		t.Errorf("Expected 11 entity counts, got %d", len(counts))
	}
}
