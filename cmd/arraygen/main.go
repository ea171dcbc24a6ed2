// Copyright 2026 array-algorithms Authors
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

// Command arraygen generates a flat, monomorphic wrapper API over the
// generic algorithm packages for one concrete element type.
//
// Usage:
//
//	arraygen -type int -pkg ints -output ints.go
//	arraygen -type float64 -name F64 -pkg f64 -families sort,search
//
// Or via go:generate:
//
//	//go:generate go run github.com/clibraries/array-algorithms/cmd/arraygen -type int -pkg ints -output ints.go
//
// The generated file contains plain functions like Sort(data []int, cmp
// func(a, b int) int) that delegate to the generic implementations, so
// call sites read without type parameters and a package can curate exactly
// the algorithm families it wants. The -name prefix keeps several element
// types in one package: -name Str yields StrSort, StrLowerBound, and so
// on.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	elemType   = flag.String("type", "", "Element type to instantiate, e.g. int, float64, or a qualified pkg.Type (required)")
	namePrefix = flag.String("name", "", "Prefix for generated function names (default: none)")
	packageOut = flag.String("pkg", "", "Output package name (required)")
	outputFile = flag.String("output", "", "Output file (default: <pkg>.go)")
	families   = flag.String("families", "all", "Comma-separated algorithm families ("+strings.Join(AvailableFamilies(), ",")+") or 'all'")
	typeImport = flag.String("typeimport", "", "Import path supplying a qualified -type (optional)")
)

func main() {
	flag.Parse()

	if *elemType == "" {
		fmt.Fprintf(os.Stderr, "Error: -type flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *packageOut == "" {
		fmt.Fprintf(os.Stderr, "Error: -pkg flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	familyList := parseFamilies(*families)
	if len(familyList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid families specified\n")
		os.Exit(1)
	}

	out := *outputFile
	if out == "" {
		out = *packageOut + ".go"
	}

	gen := &Generator{
		Type:       *elemType,
		Name:       *namePrefix,
		Package:    *packageOut,
		OutputFile: out,
		Families:   familyList,
		TypeImport: *typeImport,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s for type %s (families: %s)\n",
		out, *elemType, strings.Join(familyList, ", "))
}

func parseFamilies(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return AvailableFamilies()
	}
	return result
}
