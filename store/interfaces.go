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


package store

import "github.com/opdnav/opdnav/core"

// AECStore provides read-only access to loaded AEC records.
type AECStore interface {
	// Records returns all records in load order.
	// Callers must not mutate the returned slice.
	Records() []core.AECRecord

	// Len returns the number of loaded records.
	Len() int
}

// PGIStore provides read-only access to loaded PGI records.
type PGIStore interface {
	// Records returns all records in load order.
	// Callers must not mutate the returned slice.
	Records() []core.PGIRecord

	// Len returns the number of loaded records.
	Len() int
}
