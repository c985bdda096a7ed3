// Package capacity computes availability of a bookable resource from its
// confirmed bookings and active holds. Counts are always recomputed from rows.
package capacity

const (
	ReasonInsufficient = "not enough places available"
	ReasonInvalidType  = "invalid resource type"
)

type Counts struct {
	Total     int
	Confirmed int
	Held      int
}

type Snapshot struct {
	Available       bool
	AvailablePlaces int
	TotalPlaces     int
	ConfirmedCount  int
	HeldCount       int
	Requested       int
	Reason          string
}

func Evaluate(c Counts, requested int) Snapshot {
	free := c.Total - c.Confirmed - c.Held
	s := Snapshot{
		TotalPlaces:     c.Total,
		ConfirmedCount:  c.Confirmed,
		HeldCount:       c.Held,
		AvailablePlaces: max(free, 0),
		Requested:       requested,
		Available:       free >= requested,
	}
	if !s.Available {
		s.Reason = ReasonInsufficient
	}
	return s
}

func Unavailable(reason string, requested int) Snapshot {
	return Snapshot{Requested: requested, Reason: reason}
}

// Fits reports whether adding requested seats keeps confirmed + held within total.
func Fits(c Counts, requested int) bool {
	return c.Confirmed+c.Held+requested <= c.Total
}
