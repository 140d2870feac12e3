package services

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"transtour/internal/domain/models"
	"transtour/internal/utils"
)

// legacySequenceStride is the client wizard's index encoding: destination
// sequences below 100 belong to the first trip-day, 100..199 to the second.
// New clients send an explicit dayIndex instead; the stride only kicks in for
// undated rows without one.
const legacySequenceStride = 100

// DestinationInput is one partially-filled destination row as submitted by
// the order wizard, before normalization.
type DestinationInput struct {
	models.Destination

	// DayIndex is the explicit trip-day the client assigned this row to.
	// Nil for legacy clients that rely on the sequence stride.
	DayIndex *int
}

// ReconstructConfig pins the clock so normalization stays deterministic.
type ReconstructConfig struct {
	// Now is the reference time for synthesizing a default departure date.
	// Zero value falls back to time.Now().
	Now time.Time

	// DefaultOffsetDays is added to Now when no row carries a date.
	DefaultOffsetDays int
}

func (c ReconstructConfig) defaultDate() string {
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}
	return utils.FormatDate(now.AddDate(0, 0, c.DefaultOffsetDays))
}

var destFieldRe = regexp.MustCompile(`^destinations\[(\d+)\]\.(\w+)$`)

// ParseDestinationForm decodes the flat indexed field set
// (destinations[3].address, destinations[3].lat, ...) into destination rows
// ordered by their numeric index. Rows the form never mentions simply do not
// appear; gaps in the indices are fine.
func ParseDestinationForm(form url.Values) []DestinationInput {
	byIndex := map[int]*DestinationInput{}

	get := func(idx int) *DestinationInput {
		if d, ok := byIndex[idx]; ok {
			return d
		}
		d := &DestinationInput{}
		d.Sequence = idx
		byIndex[idx] = d
		return d
	}

	for key, vals := range form {
		m := destFieldRe.FindStringSubmatch(key)
		if m == nil || len(vals) == 0 {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		val := strings.TrimSpace(vals[0])
		d := get(idx)

		switch m[2] {
		case "address":
			d.Address = val
		case "lat":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				d.Coordinate.Lat = f
			}
		case "lng":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				d.Coordinate.Lng = f
			}
		case "arrivalTime":
			if utils.ValidTimeHM(val) {
				d.ArrivalTime = val
			}
		case "departureDate":
			if _, err := utils.ParseDate(val); err == nil {
				d.DepartureDate = val
			}
		case "departureTime":
			if utils.ValidTimeHM(val) {
				d.DepartureTime = val
			}
		case "isPickupLocation":
			d.IsPickupLocation = val == "true" || val == "1" || val == "on"
		case "sequence":
			if n, err := strconv.Atoi(val); err == nil {
				d.Sequence = n
			}
		case "dayIndex":
			if n, err := strconv.Atoi(val); err == nil && n >= 0 {
				d.DayIndex = &n
			}
		}
	}

	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := make([]DestinationInput, 0, len(indices))
	for _, idx := range indices {
		out = append(out, *byIndex[idx])
	}
	return out
}

// NormalizeDestinations rebuilds the canonical ordered destination list:
// rows without an address are dropped, undated rows are bound to a trip-day,
// the whole list is re-sequenced densely from zero, and each trip-day gets
// exactly one pickup flag on its lowest-sequence destination. Running it on
// its own output is a no-op.
func NormalizeDestinations(inputs []DestinationInput, cfg ReconstructConfig) []models.Destination {
	dated := make([]DestinationInput, 0, len(inputs))
	undated := make([]DestinationInput, 0)

	for _, in := range inputs {
		if strings.TrimSpace(in.Address) == "" {
			continue
		}
		if in.DepartureDate != "" {
			dated = append(dated, in)
		} else {
			undated = append(undated, in)
		}
	}

	availableDates := distinctDates(dated)
	if len(availableDates) == 0 {
		availableDates = []string{cfg.defaultDate()}
	}

	sort.SliceStable(undated, func(i, j int) bool {
		return undated[i].Sequence < undated[j].Sequence
	})
	for i := range undated {
		undated[i].DepartureDate = assignDate(undated[i], availableDates)
	}

	merged := append(dated, undated...)
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].DepartureDate != merged[j].DepartureDate {
			return merged[i].DepartureDate < merged[j].DepartureDate
		}
		return merged[i].Sequence < merged[j].Sequence
	})

	out := make([]models.Destination, 0, len(merged))
	for i, in := range merged {
		d := in.Destination
		d.Sequence = i
		d.IsPickupLocation = false
		out = append(out, d)
	}

	// First destination of each date becomes the pickup.
	seen := map[string]bool{}
	for i := range out {
		if !seen[out[i].DepartureDate] {
			out[i].IsPickupLocation = true
			seen[out[i].DepartureDate] = true
		}
	}

	return out
}

// GroupTrips splits normalized destinations into trip-days ordered by date
// ascending. StartTime comes from the pickup's departure time when present.
func GroupTrips(dests []models.Destination) []models.Trip {
	byDate := map[string][]models.Destination{}
	dates := []string{}
	for _, d := range dests {
		if _, ok := byDate[d.DepartureDate]; !ok {
			dates = append(dates, d.DepartureDate)
		}
		byDate[d.DepartureDate] = append(byDate[d.DepartureDate], d)
	}
	sort.Strings(dates)

	trips := make([]models.Trip, 0, len(dates))
	for _, date := range dates {
		group := byDate[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Sequence < group[j].Sequence
		})
		trip := models.Trip{DepartureDate: date, Destinations: group}
		if first := trip.First(); first != nil {
			trip.StartTime = first.DepartureTime
		}
		trips = append(trips, trip)
	}
	return trips
}

func distinctDates(dated []DestinationInput) []string {
	seen := map[string]bool{}
	dates := []string{}
	for _, d := range dated {
		if !seen[d.DepartureDate] {
			seen[d.DepartureDate] = true
			dates = append(dates, d.DepartureDate)
		}
	}
	sort.Strings(dates)
	return dates
}

// assignDate binds an undated row to one of the available dates. An explicit
// dayIndex wins (clamped to the last date); otherwise the legacy sequence
// stride decides between the first and second day.
func assignDate(in DestinationInput, availableDates []string) string {
	if in.DayIndex != nil {
		idx := *in.DayIndex
		if idx >= len(availableDates) {
			idx = len(availableDates) - 1
		}
		return availableDates[idx]
	}
	if in.Sequence < legacySequenceStride {
		return availableDates[0]
	}
	if len(availableDates) > 1 {
		return availableDates[1]
	}
	return availableDates[0]
}
