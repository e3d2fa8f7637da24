package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a stable identifier for directory records.
// It is derived from record content, so reloading the same CSV
// produces the same IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// AECRecord is a single department/location entry for the AEC campus.
// Records are immutable after load; their order in the store is the
// order of the source CSV rows.
type AECRecord struct {
	ID            ID     `json:"id"`
	Floor         string `json:"floor"`
	BlockArea     string `json:"block_area"`
	RoomCounterNo string `json:"room_counter_no"`
	OperatingDays string `json:"operating_days"`
	Department    string `json:"department"`
	Notes         string `json:"notes"`
}

// ContentKey returns the canonical text the record's ID is hashed from.
func (r *AECRecord) ContentKey() string {
	return r.Floor + "|" + r.BlockArea + "|" + r.RoomCounterNo + "|" +
		r.OperatingDays + "|" + r.Department + "|" + r.Notes
}

// PGIRecord is a single department entry for the PGI campus.
//
// Level is derived from FloorText via ParseLevel; it is nil when the
// floor text is not one of the known floor names. Counters holds the
// raw comma-separated counter list from the CSV; it is parsed lazily
// at query time, never at load time.
type PGIRecord struct {
	ID         ID     `json:"id"`
	Level      *int   `json:"level"`
	FloorText  string `json:"original_floor_text"`
	RoomNo     string `json:"room_no"`
	Block      string `json:"block"`
	Days       string `json:"days"`
	Building   string `json:"building"`
	Department string `json:"department"`
	Notes      string `json:"notes"`
	OPDType    string `json:"opd_type"`
	Doctors    string `json:"doctors"`
	Counters   string `json:"counters"`
}

// ContentKey returns the canonical text the record's ID is hashed from.
func (r *PGIRecord) ContentKey() string {
	return r.FloorText + "|" + r.RoomNo + "|" + r.Building + "|" + r.Days + "|" +
		r.Department + "|" + r.Notes + "|" + r.OPDType + "|" + r.Doctors + "|" + r.Counters
}
