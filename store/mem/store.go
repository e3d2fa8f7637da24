package mem

import (
	"github.com/opdnav/opdnav/core"
	"github.com/opdnav/opdnav/store"
)

// AEC is an immutable in-memory AEC record store.
// The zero value is an empty store.
type AEC struct {
	records []core.AECRecord
}

var _ store.AECStore = (*AEC)(nil)

// NewAEC builds a store from the given records. The slice is copied,
// so the caller's slice stays independent of the store.
func NewAEC(records []core.AECRecord) *AEC {
	out := make([]core.AECRecord, len(records))
	copy(out, records)
	return &AEC{records: out}
}

// Records returns all records in load order.
func (s *AEC) Records() []core.AECRecord {
	if s == nil {
		return nil
	}
	return s.records
}

// Len returns the number of records.
func (s *AEC) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// PGI is an immutable in-memory PGI record store.
// The zero value is an empty store.
type PGI struct {
	records []core.PGIRecord
}

var _ store.PGIStore = (*PGI)(nil)

// NewPGI builds a store from the given records. The slice is copied,
// so the caller's slice stays independent of the store.
func NewPGI(records []core.PGIRecord) *PGI {
	out := make([]core.PGIRecord, len(records))
	copy(out, records)
	return &PGI{records: out}
}

// Records returns all records in load order.
func (s *PGI) Records() []core.PGIRecord {
	if s == nil {
		return nil
	}
	return s.records
}

// Len returns the number of records.
func (s *PGI) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}
