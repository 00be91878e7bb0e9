package staff

// Department is looked up by exact name and created on first reference. The
// import pipeline never updates or deletes one.
type Department struct {
	ID   int64
	Name string
}
