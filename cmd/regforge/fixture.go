package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dave/jennifer/jen"
)

// fixture is one pattern and the strings generated from it.
type fixture struct {
	Pattern string
	Values  []string
}

// multiline renders a composite literal with one element per line.
var multiline = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

// fixtureNames returns one Go identifier per fixture: base alone for a
// single fixture, base0, base1, ... otherwise.
func fixtureNames(base string, n int) []string {
	if n == 1 {
		return []string{base}
	}
	names := make([]string, n)
	for i := range names {
		names[i] = base + strconv.Itoa(i)
	}
	return names
}

// buildFixtureFile renders fixtures as a Go file declaring one []string
// variable per pattern.
func buildFixtureFile(pkg, base string, seed uint64, fixtures []fixture) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by regforge. DO NOT EDIT.")
	f.HeaderComment(fmt.Sprintf("seed: %d", seed))

	names := fixtureNames(base, len(fixtures))
	for i, fx := range fixtures {
		f.Commentf("%s holds strings generated from /%s/.", names[i], fx.Pattern)
		f.Var().Id(names[i]).Op("=").Index().String().CustomFunc(multiline, func(g *jen.Group) {
			for _, v := range fx.Values {
				g.Lit(v)
			}
		})
	}
	return f
}

func renderFixtures(w io.Writer, pkg, base string, seed uint64, fixtures []fixture) error {
	return buildFixtureFile(pkg, base, seed, fixtures).Render(w)
}

func saveFixtures(path, pkg, base string, seed uint64, fixtures []fixture) error {
	return buildFixtureFile(pkg, base, seed, fixtures).Save(path)
}
