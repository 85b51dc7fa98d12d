// Package catalog holds the in-memory course catalog and the loaders that
// populate it from course list files.
package catalog

import "strings"

// Course is a single catalog entry.
type Course struct {
	ID            string
	Title         string
	Prerequisites []string // Course IDs, in file order. Not checked against the catalog.
}

// PrerequisiteList renders the prerequisites as a space separated list.
// A course without prerequisites renders as an empty string.
func (c Course) PrerequisiteList() string {
	return strings.Join(c.Prerequisites, " ")
}

// Listing is the (id, title) view of a course printed by the course list.
type Listing struct {
	ID    string
	Title string
}
