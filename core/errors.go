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

import "errors"

// Domain validation errors
var (
	// ErrInvalidAECRecord indicates an AECRecord failed validation.
	ErrInvalidAECRecord = errors.New("invalid AEC record")

	// ErrInvalidPGIRecord indicates a PGIRecord failed validation.
	ErrInvalidPGIRecord = errors.New("invalid PGI record")

	// ErrEmptyDepartment indicates the Department field is empty.
	ErrEmptyDepartment = errors.New("department cannot be empty")
)
