package booking

import "fmt"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSelected  SeatStatus = "selected"
	SeatOccupied  SeatStatus = "occupied"
)

const (
	// SeatRows and SeatColumns fix the auditorium layout at 96 seats.
	SeatRows    = 8
	SeatColumns = 12

	// MaxSeatsPerBooking caps a single booking attempt.
	MaxSeatsPerBooking = 10
)

// DefaultOccupiedSeats is the fixed demo occupancy reused for every
// session. It is cosmetic sample data, not a reservation system.
var DefaultOccupiedSeats = []string{"A3", "A4", "B7", "C2", "D5", "E8", "F1", "G6"}

// SeatMap tracks per-seat status for one booking attempt. Seats are
// identified by a row letter (A-H) and a column number (1-12).
type SeatMap struct {
	status   map[string]SeatStatus
	selected []string
}

// NewSeatMap builds a fresh grid with the given seats pre-marked
// occupied. Passing no arguments uses DefaultOccupiedSeats; occupancy
// ids outside the grid are ignored.
func NewSeatMap(occupied ...string) *SeatMap {
	if len(occupied) == 0 {
		occupied = DefaultOccupiedSeats
	}
	m := &SeatMap{status: make(map[string]SeatStatus, SeatRows*SeatColumns)}
	for r := 0; r < SeatRows; r++ {
		for c := 1; c <= SeatColumns; c++ {
			m.status[SeatID(r, c)] = SeatAvailable
		}
	}
	for _, id := range occupied {
		if _, ok := m.status[id]; ok {
			m.status[id] = SeatOccupied
		}
	}
	return m
}

// SeatID formats the identifier for the seat at row index (0-based) and
// column number (1-based), e.g. SeatID(0, 5) == "A5".
func SeatID(row int, column int) string {
	return fmt.Sprintf("%c%d", 'A'+row, column)
}

// Status returns the current status of a seat, or false for ids outside
// the grid.
func (m *SeatMap) Status(seatID string) (SeatStatus, bool) {
	status, ok := m.status[seatID]
	return status, ok
}

// Toggle flips a seat between available and selected. Occupied seats
// are ignored without error. Selecting beyond MaxSeatsPerBooking fails
// with ErrSelectionLimit and leaves the map unchanged.
func (m *SeatMap) Toggle(seatID string) error {
	status, ok := m.status[seatID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSeat, seatID)
	}

	switch status {
	case SeatOccupied:
		return nil
	case SeatSelected:
		m.status[seatID] = SeatAvailable
		for i, id := range m.selected {
			if id == seatID {
				m.selected = append(m.selected[:i], m.selected[i+1:]...)
				break
			}
		}
		return nil
	default:
		if len(m.selected) >= MaxSeatsPerBooking {
			return ErrSelectionLimit
		}
		m.status[seatID] = SeatSelected
		m.selected = append(m.selected, seatID)
		return nil
	}
}

// Selected returns the selected seat ids in the order they were picked.
func (m *SeatMap) Selected() []string {
	out := make([]string, len(m.selected))
	copy(out, m.selected)
	return out
}

// SelectedCount reports how many seats are currently selected.
func (m *SeatMap) SelectedCount() int {
	return len(m.selected)
}
