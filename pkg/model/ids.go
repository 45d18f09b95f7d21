// pkg/model/ids.go
package model

// IDRange is a closed range of student identifiers
type IDRange struct {
	Start int
	End   int
}

// Len returns the number of identifiers in the range
func (r IDRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// IDs returns the identifiers in ascending order
func (r IDRange) IDs() []int {
	ids := make([]int, 0, r.Len())
	for id := r.Start; id <= r.End; id++ {
		ids = append(ids, id)
	}
	return ids
}
