package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "simple content",
			content: "Cornea Services",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "composed record key",
			content: "Ground Floor|A Block|Room 12|Mon-Fri|E.N.T.|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}

	t.Run("different content produces different IDs", func(t *testing.T) {
		if IDFromContent("Cornea Services") == IDFromContent("Retina Services") {
			t.Error("IDFromContent() produced the same ID for different content")
		}
	})
}

func TestContentKey(t *testing.T) {
	aec := AECRecord{
		Floor:         "Ground Floor",
		BlockArea:     "A Block",
		RoomCounterNo: "Counter 3",
		OperatingDays: "Mon-Sat",
		Department:    "Optical Shop",
		Notes:         "Near main entrance",
	}
	want := "Ground Floor|A Block|Counter 3|Mon-Sat|Optical Shop|Near main entrance"
	if got := aec.ContentKey(); got != want {
		t.Errorf("AECRecord.ContentKey() = %q, want %q", got, want)
	}

	pgi := PGIRecord{
		FloorText:  "GROUND FLOOR",
		RoomNo:     "12,13",
		Building:   "Nehru Hospital",
		Days:       "Mon-Fri",
		Department: "Cardiology",
		Notes:      "8am-11am | Bring referral slip",
		OPDType:    "general",
		Doctors:    "Dr. Rao",
		Counters:   "1-5",
	}
	want = "GROUND FLOOR|12,13|Nehru Hospital|Mon-Fri|Cardiology|8am-11am | Bring referral slip|general|Dr. Rao|1-5"
	if got := pgi.ContentKey(); got != want {
		t.Errorf("PGIRecord.ContentKey() = %q, want %q", got, want)
	}
}
