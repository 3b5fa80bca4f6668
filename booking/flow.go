package booking

import (
	"fmt"
	"strings"
	"time"

	"cinebook-tui/model"
)

// State is the step the selection flow is currently in.
type State int

const (
	Browsing State = iota
	MovieSelected
	ShowtimeSelected
	SeatsSelected
	PaymentPending
	Confirmed
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case MovieSelected:
		return "movie selected"
	case ShowtimeSelected:
		return "showtime selected"
	case SeatsSelected:
		return "seats selected"
	case PaymentPending:
		return "payment pending"
	case Confirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Catalog is the read-only reference data the flow resolves movie ids
// against.
type Catalog interface {
	MovieByID(id int) (model.Movie, bool)
}

// HistoryStore persists a user's booking list as a whole value keyed by
// email. Loading a key that was never saved yields an empty list.
type HistoryStore interface {
	Load(email string) ([]model.Booking, error)
	Save(email string, bookings []model.Booking) error
}

// Session is the transient in-progress booking state. It is owned by
// the Flow and reset after a booking completes or is abandoned.
type Session struct {
	Movie       model.Movie
	Theater     string
	Showtime    string
	TicketPrice int
	Seats       *SeatMap
}

type PaymentMethod string

const (
	PayCredit PaymentMethod = "credit"
	PayUPI    PaymentMethod = "upi"
)

// Payment carries the mock payment form fields. Validation only checks
// presence; no real card or UPI verification happens.
type Payment struct {
	Method     PaymentMethod
	CardNumber string
	CardExpiry string
	CardCVV    string
	UPIID      string
}

func (p Payment) validate() error {
	switch p.Method {
	case PayCredit:
		if strings.TrimSpace(p.CardNumber) == "" ||
			strings.TrimSpace(p.CardExpiry) == "" ||
			strings.TrimSpace(p.CardCVV) == "" {
			return fmt.Errorf("%w: card details required", ErrValidationFailed)
		}
	case PayUPI:
		if strings.TrimSpace(p.UPIID) == "" {
			return fmt.Errorf("%w: UPI id required", ErrValidationFailed)
		}
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrValidationFailed, p.Method)
	}
	return nil
}

// Flow is the linear selection state machine driving one booking at a
// time: browse, pick a movie, pick a showtime, pick seats, pay. It owns
// the single Selection Session and the signed-in user's history.
type Flow struct {
	catalog Catalog
	history HistoryStore

	user     *model.User
	bookings []model.Booking

	state   State
	session Session

	now func() time.Time
}

// NewFlow wires the flow to its catalog and persistence collaborators.
func NewFlow(catalog Catalog, history HistoryStore) *Flow {
	return &Flow{
		catalog: catalog,
		history: history,
		state:   Browsing,
		now:     time.Now,
	}
}

func (f *Flow) State() State { return f.state }

// Session exposes the current selection for display. The seat map
// pointer is live; callers must go through ToggleSeat to mutate it.
func (f *Flow) Session() Session { return f.session }

// User returns the signed-in user, or false when nobody is signed in.
func (f *Flow) User() (model.User, bool) {
	if f.user == nil {
		return model.User{}, false
	}
	return *f.user, true
}

// SignIn authenticates with the stub identity provider: any non-empty
// credentials succeed. The user's persisted history is loaded on
// success.
func (f *Flow) SignIn(email string, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: email and password required", ErrValidationFailed)
	}
	return f.startSessionFor(model.User{Name: "John Doe", Email: strings.TrimSpace(email)})
}

// Register creates the stub account. Password and confirmation must
// match; nothing else is verified.
func (f *Flow) Register(name string, email string, password string, confirm string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: name, email and password required", ErrValidationFailed)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidationFailed)
	}
	return f.startSessionFor(model.User{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)})
}

// Resume signs in a previously stored user without credentials.
func (f *Flow) Resume(user model.User) error {
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: stored user has no email", ErrValidationFailed)
	}
	return f.startSessionFor(user)
}

func (f *Flow) startSessionFor(user model.User) error {
	bookings, err := f.history.Load(user.Email)
	if err != nil {
		return fmt.Errorf("load booking history: %w", err)
	}
	f.user = &user
	f.bookings = bookings
	return nil
}

// SignOut drops the current user and discards any in-progress booking.
func (f *Flow) SignOut() {
	f.user = nil
	f.bookings = nil
	f.Abandon()
}

// SelectMovie starts a booking for the given movie. Unknown ids leave
// the flow unchanged.
func (f *Flow) SelectMovie(id int) error {
	movie, ok := f.catalog.MovieByID(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownMovie, id)
	}
	f.session = Session{Movie: movie}
	f.state = MovieSelected
	return nil
}

// SelectShowtime records the theater, time and price on the session and
// opens a fresh seat map.
func (f *Flow) SelectShowtime(theater string, timeOfDay string, price int) error {
	if f.state != MovieSelected && f.state != ShowtimeSelected {
		return fmt.Errorf("%w: select a movie first", ErrInvalidState)
	}
	f.session.Theater = theater
	f.session.Showtime = timeOfDay
	f.session.TicketPrice = price
	f.session.Seats = NewSeatMap()
	f.state = ShowtimeSelected
	return nil
}

// ToggleSeat flips one seat on the session's map and keeps the flow
// state in sync with whether any seats remain selected.
func (f *Flow) ToggleSeat(seatID string) error {
	if f.state != ShowtimeSelected && f.state != SeatsSelected {
		return fmt.Errorf("%w: select a showtime first", ErrInvalidState)
	}
	if err := f.session.Seats.Toggle(seatID); err != nil {
		return err
	}
	if f.session.Seats.SelectedCount() > 0 {
		f.state = SeatsSelected
	} else {
		f.state = ShowtimeSelected
	}
	return nil
}

// Totals reports the running checkout amounts for the current
// selection. All zeroes when nothing is selected.
func (f *Flow) Totals() Totals {
	if f.session.Seats == nil {
		return Totals{}
	}
	return ComputeTotals(f.session.Seats.SelectedCount(), f.session.TicketPrice)
}

// ProceedToPayment moves to the payment step. It requires at least one
// selected seat.
func (f *Flow) ProceedToPayment() error {
	if f.state != SeatsSelected && f.state != ShowtimeSelected {
		return fmt.Errorf("%w: pick seats first", ErrInvalidState)
	}
	if f.session.Seats == nil || f.session.Seats.SelectedCount() == 0 {
		return ErrEmptySelection
	}
	f.state = PaymentPending
	return nil
}

// SubmitPayment runs the mock payment, assembles the booking record,
// prepends it to the user's history and persists the whole list. On
// success the session resets and the flow returns to Browsing for the
// next booking.
func (f *Flow) SubmitPayment(payment Payment) (model.Booking, error) {
	if f.state != PaymentPending {
		return model.Booking{}, fmt.Errorf("%w: proceed to payment first", ErrInvalidState)
	}
	if f.user == nil {
		return model.Booking{}, ErrNotSignedIn
	}
	if err := payment.validate(); err != nil {
		return model.Booking{}, err
	}

	record, err := f.assembleBooking(payment)
	if err != nil {
		return model.Booking{}, err
	}

	history := append([]model.Booking{record}, f.bookings...)
	if err := f.history.Save(f.user.Email, history); err != nil {
		return model.Booking{}, fmt.Errorf("persist booking: %w", err)
	}
	f.bookings = history

	f.Abandon()
	return record, nil
}

func (f *Flow) assembleBooking(payment Payment) (model.Booking, error) {
	if f.session.Seats == nil || f.session.Seats.SelectedCount() == 0 {
		return model.Booking{}, ErrEmptySelection
	}
	if f.session.Movie.Id == 0 || f.session.Theater == "" || f.session.Showtime == "" || f.session.TicketPrice <= 0 {
		return model.Booking{}, ErrIncompleteSelection
	}

	now := f.now()
	seats := f.session.Seats.Selected()
	totals := ComputeTotals(len(seats), f.session.TicketPrice)
	return model.Booking{
		Id:             newBookingID(now),
		Movie:          f.session.Movie,
		Theater:        f.session.Theater,
		Showtime:       f.session.Showtime,
		Seats:          seats,
		TicketPrice:    f.session.TicketPrice,
		ConvenienceFee: totals.ConvenienceFee,
		TotalAmount:    totals.Total,
		BookingDate:    now,
		Status:         model.StatusConfirmed,
		PaymentMethod:  string(payment.Method),
	}, nil
}

// Abandon discards the selection session and returns to Browsing. Valid
// from any step.
func (f *Flow) Abandon() {
	f.session = Session{}
	f.state = Browsing
}

// Bookings returns the signed-in user's history, most recent first.
func (f *Flow) Bookings() []model.Booking {
	out := make([]model.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out
}

// FilterBookings applies a status/date filter to the user's history.
func (f *Flow) FilterBookings(filter Filter) []model.Booking {
	return FilterBookings(f.Bookings(), filter)
}

// CancelBooking marks a confirmed booking cancelled and re-persists the
// history. Cancelling twice fails with ErrInvalidTransition.
func (f *Flow) CancelBooking(id string) error {
	if f.user == nil {
		return ErrNotSignedIn
	}
	for i := range f.bookings {
		if f.bookings[i].Id != id {
			continue
		}
		if f.bookings[i].Status == model.StatusCancelled {
			return ErrInvalidTransition
		}
		f.bookings[i].Status = model.StatusCancelled
		if err := f.history.Save(f.user.Email, f.bookings); err != nil {
			f.bookings[i].Status = model.StatusConfirmed
			return fmt.Errorf("persist cancellation: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
