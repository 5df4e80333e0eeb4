// Package convert implements the convert, list and export commands.
//
// For each selected fixture it prints the Moore machine, converts it and
// prints the equivalent Mealy machine, under a numbered test case heading.
// Fixtures come from the built-in set or from the catalog named by
// catalog_path, and export writes the built-in set as such a catalog.
package convert
