// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGoldenCSS compares css against testdata/golden/{name}.golden in the
// calling package.
//
// To regenerate golden files, run the package tests with -update:
//
//	go test ./internal/compiler -update
func AssertGoldenCSS(t *testing.T, name string, css string) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(css))
}
