package models

// FetchProvenance records how the data in a slice was last pulled.
// LastPullLength is the number of records requested, which may exceed
// the number received.
type FetchProvenance struct {
	LastPullLength int   `json:"lastPullLength"`
	LastPullDate   *Date `json:"lastPullDate"`
}

// Dated is implemented by every record the provider returns. Records
// without a period date (TTM snapshots, profiles) return "".
type Dated interface {
	PeriodDate() string
}

// Slice is one cached series: records ordered most recent first, plus
// the provenance of the last pull.
type Slice[T Dated] struct {
	Data       []T             `json:"data"`
	Provenance FetchProvenance `json:"provenance"`
}

// Refreshable is the view the refresh machinery has of any Slice.
type Refreshable interface {
	Len() int
	// LatestDate is the period date of the newest record, or "".
	LatestDate() string
	LastFetch() FetchProvenance
	// NewBuffer returns a pointer to an empty destination that a fetch
	// can decode into.
	NewBuffer() any
	// Commit replaces the data with the buffer contents and records prov.
	// A buffer of the wrong type leaves the slice empty.
	Commit(buf any, prov FetchProvenance)
}

func (s *Slice[T]) Len() int { return len(s.Data) }

func (s *Slice[T]) LatestDate() string {
	if len(s.Data) == 0 {
		return ""
	}
	return s.Data[0].PeriodDate()
}

func (s *Slice[T]) LastFetch() FetchProvenance { return s.Provenance }

func (s *Slice[T]) NewBuffer() any {
	var buf []T
	return &buf
}

func (s *Slice[T]) Commit(buf any, prov FetchProvenance) {
	s.Data = nil
	if p, ok := buf.(*[]T); ok && p != nil {
		s.Data = *p
	}
	s.Provenance = prov
}

// Latest returns the most recent record.
func (s *Slice[T]) Latest() (T, bool) {
	var zero T
	if len(s.Data) == 0 {
		return zero, false
	}
	return s.Data[0], true
}
