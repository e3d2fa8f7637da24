package core

import (
	"errors"
	"testing"
)

func TestValidateAECRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		rec := &AECRecord{Department: "Cornea Services"}
		if err := ValidateAECRecord(rec); err != nil {
			t.Errorf("ValidateAECRecord() = %v, want nil", err)
		}
	})

	t.Run("empty notes are valid", func(t *testing.T) {
		rec := &AECRecord{Department: "Optical Shop", Notes: ""}
		if err := ValidateAECRecord(rec); err != nil {
			t.Errorf("ValidateAECRecord() = %v, want nil", err)
		}
	})

	t.Run("empty department", func(t *testing.T) {
		rec := &AECRecord{Floor: "1"}
		err := ValidateAECRecord(rec)
		if !errors.Is(err, ErrInvalidAECRecord) {
			t.Errorf("ValidateAECRecord() = %v, want ErrInvalidAECRecord", err)
		}
		if !errors.Is(err, ErrEmptyDepartment) {
			t.Errorf("ValidateAECRecord() = %v, want wrapped ErrEmptyDepartment", err)
		}
	})

	t.Run("nil record", func(t *testing.T) {
		if err := ValidateAECRecord(nil); !errors.Is(err, ErrInvalidAECRecord) {
			t.Errorf("ValidateAECRecord(nil) = %v, want ErrInvalidAECRecord", err)
		}
	})
}

func TestValidatePGIRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		rec := &PGIRecord{Department: "Cardiology"}
		if err := ValidatePGIRecord(rec); err != nil {
			t.Errorf("ValidatePGIRecord() = %v, want nil", err)
		}
	})

	t.Run("nil level is valid", func(t *testing.T) {
		rec := &PGIRecord{Department: "Cardiology", Level: nil}
		if err := ValidatePGIRecord(rec); err != nil {
			t.Errorf("ValidatePGIRecord() = %v, want nil", err)
		}
	})

	t.Run("empty department", func(t *testing.T) {
		if err := ValidatePGIRecord(&PGIRecord{}); !errors.Is(err, ErrInvalidPGIRecord) {
			t.Errorf("ValidatePGIRecord() = %v, want ErrInvalidPGIRecord", err)
		}
	})

	t.Run("nil record", func(t *testing.T) {
		if err := ValidatePGIRecord(nil); !errors.Is(err, ErrInvalidPGIRecord) {
			t.Errorf("ValidatePGIRecord(nil) = %v, want ErrInvalidPGIRecord", err)
		}
	})
}
