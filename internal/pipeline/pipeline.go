package pipeline

import (
	"sort"

	"hospital-bed-backend/internal/geo"
	"hospital-bed-backend/internal/models"
)

// Sort keys accepted by Render. Ties keep their incoming relative order.
const (
	SortLatest      = "latest"
	SortOldest      = "oldest"
	SortNameAsc     = "nameAsc"
	SortNameDesc    = "nameDesc"
	SortICUHigh     = "icuHigh"
	SortRegularHigh = "regularHigh"
)

// Bed-type filter values. Any other value (including empty) disables the
// bed-type stage.
const (
	BedTypeICU     = "icu"
	BedTypeRegular = "regular"
)

// DefaultPageSize matches the list view's fixed page size.
const DefaultPageSize = 10

// CoordsFunc resolves a hospital name to coordinates. Hospitals the resolver
// cannot place are excluded by the distance stage.
type CoordsFunc func(name string) (geo.Point, bool)

// State is the complete view state for one render: filters, sort key and
// page position. Render never mutates it.
type State struct {
	BedType       string
	MaxDistanceKm float64
	UserLocation  *geo.Point
	Sort          string
	Page          int
	PageSize      int
}

// Page is one rendered page of hospitals plus pagination bookkeeping.
// TotalPages is at least 1, even when the filtered set is empty.
type Page struct {
	Hospitals  []models.Hospital `json:"hospitals"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// Render applies the fixed stage order: bed-type filter, distance filter,
// stable sort, paginate. The distance stage runs only when both a positive
// threshold and a user location are present; otherwise it is a no-op.
func Render(hospitals []models.Hospital, state State, coords CoordsFunc) Page {
	filtered := make([]models.Hospital, len(hospitals))
	copy(filtered, hospitals)

	switch state.BedType {
	case BedTypeICU:
		filtered = keep(filtered, func(h models.Hospital) bool { return h.ICUBeds > 0 })
	case BedTypeRegular:
		filtered = keep(filtered, func(h models.Hospital) bool { return h.RegularBeds > 0 })
	}

	if state.MaxDistanceKm > 0 && state.UserLocation != nil && coords != nil {
		user := *state.UserLocation
		filtered = keep(filtered, func(h models.Hospital) bool {
			point, ok := coords(h.Name)
			if !ok {
				return false
			}
			return geo.Distance(user, point) <= state.MaxDistanceKm
		})
	}

	sortHospitals(filtered, state.Sort)

	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	// Clamp defensively; the UI never produces out-of-range pages but the
	// pipeline must not trust that.
	page := state.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Hospitals:  filtered[start:end],
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

func keep(hospitals []models.Hospital, pred func(models.Hospital) bool) []models.Hospital {
	out := hospitals[:0]
	for _, h := range hospitals {
		if pred(h) {
			out = append(out, h)
		}
	}
	return out
}

func sortHospitals(hospitals []models.Hospital, order string) {
	var less func(a, b models.Hospital) bool

	switch order {
	case SortLatest:
		less = func(a, b models.Hospital) bool { return a.Timestamp.After(b.Timestamp) }
	case SortOldest:
		less = func(a, b models.Hospital) bool { return a.Timestamp.Before(b.Timestamp) }
	case SortNameAsc:
		less = func(a, b models.Hospital) bool { return a.Name < b.Name }
	case SortNameDesc:
		less = func(a, b models.Hospital) bool { return a.Name > b.Name }
	case SortICUHigh:
		less = func(a, b models.Hospital) bool { return a.ICUBeds > b.ICUBeds }
	case SortRegularHigh:
		less = func(a, b models.Hospital) bool { return a.RegularBeds > b.RegularBeds }
	default:
		// Unknown or empty key keeps the incoming order.
		return
	}

	sort.SliceStable(hospitals, func(i, j int) bool {
		return less(hospitals[i], hospitals[j])
	})
}
