package repository

// DateRange bounds a query to an inclusive [Start, End] window of calendar
// dates in "2006-01-02" form. An empty field leaves that side unbounded.
type DateRange struct {
	Start string
	End   string
}

// IsZero reports whether the range is unbounded on both sides.
func (dr DateRange) IsZero() bool {
	return dr.Start == "" && dr.End == ""
}
