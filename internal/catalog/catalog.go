package catalog

// Catalog is the ordered, in-memory store of courses for one session.
// It is not safe for concurrent use; the owning session serializes access.
type Catalog struct {
	courses []Course
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Replace swaps the catalog contents for courses in a single step.
// The slice is copied so later changes by the caller are not visible.
func (c *Catalog) Replace(courses []Course) {
	c.courses = append([]Course(nil), courses...)
}

// Len returns the number of courses held.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// List returns the id and title of every course in insertion order.
// An empty catalog yields an empty, non-nil slice.
func (c *Catalog) List() []Listing {
	listings := make([]Listing, 0, len(c.courses))
	for _, course := range c.courses {
		listings = append(listings, Listing{ID: course.ID, Title: course.Title})
	}
	return listings
}

// Find scans the catalog in order and returns the first course whose ID
// equals id exactly.
func (c *Catalog) Find(id string) (Course, bool) {
	for _, course := range c.courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}
