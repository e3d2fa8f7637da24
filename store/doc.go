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


// Package store defines read-only access to campus record stores.
//
// A store is populated exactly once, before any search runs, and is
// never mutated afterwards. Because stores are immutable after build,
// implementations can serve concurrent readers without locking.
//
// The in-memory implementation lives in the mem subpackage.
package store
