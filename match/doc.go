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


// Package match implements the campus directory matching cascades.
//
// Both matchers try a fixed sequence of strategies and stop at the
// first one that yields results:
//   - AECMatcher: exact -> whole word -> substring -> fuzzy suggestion
//   - PGIMatcher: numeric (counters, rooms, department numbers) ->
//     department substring -> multi-field substring -> fuzzy suggestion
//
// A cascade never fails with an error; a phase either admits records
// or falls through to the next one. When no phase admits anything,
// the fuzzy stage may offer a single "did you mean" suggestion, gated
// by a minimum token-set similarity score.
//
// Queries must be sanitized with Sanitize before matching. Matchers
// are pure readers over an immutable store, so a single matcher can
// serve concurrent searches without locking.
package match
