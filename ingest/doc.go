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


// Package ingest loads campus directory records from CSV files.
//
// Loading happens once, at process start. The Loader reads the two
// campus files concurrently through a worker pool and absorbs load
// failures: a missing or malformed file is logged and yields an empty
// store, never a partially populated one and never an error to the
// service. The per-file Load methods return errors so the absorption
// boundary stays testable.
package ingest
