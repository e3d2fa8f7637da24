// Copyright 2026 OPD Navigator Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateAECRecord validates an AECRecord according to domain rules.
//
// Validation rules:
//   - Department must not be empty
//
// NOT validated:
//   - Notes (may legitimately be empty)
//   - ID (0 is valid before the loader assigns content IDs)
func ValidateAECRecord(record *AECRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidAECRecord)
	}

	if record.Department == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAECRecord, ErrEmptyDepartment)
	}

	return nil
}

// ValidatePGIRecord validates a PGIRecord according to domain rules.
//
// Validation rules:
//   - Department must not be empty
//
// NOT validated:
//   - Level (nil is valid for unmapped floor text)
//   - Counters (malformed tokens are skipped at query time)
func ValidatePGIRecord(record *PGIRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidPGIRecord)
	}

	if record.Department == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPGIRecord, ErrEmptyDepartment)
	}

	return nil
}
