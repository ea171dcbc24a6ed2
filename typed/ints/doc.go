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

// Package ints is the generated int instantiation of the generic
// algorithm packages.
//
// Every function is a thin monomorphic wrapper over its generic
// counterpart, with plain func types in the signatures so call sites
// carry no type parameters:
//
//	ints.Sort(data, func(a, b int) int { return a - b })
//
// The file ints.go is produced by cmd/arraygen and should not be edited
// directly; regenerate it after changing the wrapper templates.
package ints

//go:generate go run ../../cmd/arraygen -type int -pkg ints -output ints.go
