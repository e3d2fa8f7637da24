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


// Command lookup runs a single directory query from the terminal:
//
//	lookup pgi "counter 12"
//	lookup aec cornea
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/opdnav/opdnav"
)

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: lookup <aec|pgi> <query...>")
		os.Exit(2)
	}
	campus := strings.ToLower(os.Args[1])
	query := strings.Join(os.Args[2:], " ")

	dir, err := opdnav.Open(opdnav.Config{
		AECPath: envOr("OPDNAV_AEC_CSV", "aec_data.csv"),
		PGIPath: envOr("OPDNAV_PGI_CSV", "pgi_departments.csv"),
	})
	if err != nil {
		panic(err)
	}

	switch campus {
	case "aec":
		results, suggestion := dir.SearchAEC(query)
		fmt.Printf("Found %d hits\n", len(results))
		for i, rec := range results {
			fmt.Printf("%d: %s (floor %s, %s)\n", i, rec.Department, rec.Floor, rec.RoomCounterNo)
		}
		if suggestion != nil {
			fmt.Printf("Did you mean: %s\n", *suggestion)
		}
	case "pgi":
		results, suggestion := dir.SearchPGI(query)
		fmt.Printf("Found %d hits\n", len(results))
		for i, rec := range results {
			fmt.Printf("%d: %s (%s, rooms %s, counters %s)\n", i, rec.Department, rec.Building, rec.RoomNo, rec.Counters)
		}
		if suggestion != "" {
			fmt.Printf("Did you mean: %s\n", suggestion)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: lookup <aec|pgi> <query...>")
		os.Exit(2)
	}
}
