// Package tlenixtest is a collect-and-run test harness: packages register
// named structural assertions from init() and a single entry point runs
// them all. Ordinary package tests still use Go's own testing package and
// testify; this harness exists for cross-package structural assertions
// (e.g. "does our Stats layout agree with unix.Statx_t's") that want to
// run as one suite regardless of which package registered them.
package tlenixtest

import (
	"fmt"
	"reflect"
	"sort"
	"testing"
)

// Case is one registered structural assertion.
type Case struct {
	Name string
	Run  func(t *testing.T)
}

var registry []Case

// Register adds a named test case to the harness. Call from an init()
// func in the package that owns the assertion.
func Register(name string, run func(t *testing.T)) {
	registry = append(registry, Case{Name: name, Run: run})
}

// RunAll runs every registered case as a subtest of t, in a stable,
// alphabetical order so failures are reproducible across runs.
func RunAll(t *testing.T) {
	cases := append([]Case(nil), registry...)
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	for _, c := range cases {
		t.Run(c.Name, c.Run)
	}
}

// AssertEqual fails t if a != b.
func AssertEqual[T comparable](t *testing.T, a, b T) {
	t.Helper()
	if a != b {
		t.Fatalf("%v != %v", a, b)
	}
}

// AssertLayout fails t if A and B do not have the same size and kind,
// field by field for structs. Used to check Tlenix's own wire-adjacent
// structs against golang.org/x/sys/unix's kernel-facing ones.
func AssertLayout[A, B any](t *testing.T) {
	t.Helper()
	assertTypes(t, reflect.TypeFor[A](), reflect.TypeFor[B]())
}

func assertTypes(t *testing.T, a, b reflect.Type) {
	t.Helper()
	if a.Kind() != b.Kind() {
		t.Fatalf("kind mismatch: %v != %v", a.Kind(), b.Kind())
	}
	if a.Size() != b.Size() {
		t.Fatalf("%v size %d != %v size %d", a, a.Size(), b, b.Size())
	}
	if a.Kind() == reflect.Struct {
		var j int
		for i := 0; i < a.NumField(); i++ {
			af := a.Field(i)
			if af.Type.Size() == 0 {
				continue
			}
			if j >= b.NumField() {
				t.Fatalf("%v has more fields than %v", a, b)
			}
			assertTypes(t, af.Type, b.Field(j).Type)
			j++
		}
	}
}

// Sprint is a tiny helper used by AssertEqual's callers when a custom
// message is useful.
func Sprint(format string, args ...any) string { return fmt.Sprintf(format, args...) }
