package tui

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinebook-tui/booking"
	"cinebook-tui/catalog"
	"cinebook-tui/model"
	"cinebook-tui/store"
)

type appState int

const (
	stateLoadingMovies appState = iota
	stateBrowseMovies
	stateBrowseTheaters
	stateTheaterDetails
	stateMovieDetails
	stateSelectShowtime
	stateConfirmingShowtime
	stateSeatMap
	statePayment
	stateProcessingPayment
	stateTicket
	stateBookings
	stateSignIn
	stateError
)

// Fixed artificial delays simulating backend calls. The triggering
// controls stay disabled while one is outstanding.
const (
	catalogLoadDelay     = 500 * time.Millisecond
	showtimeConfirmDelay = 500 * time.Millisecond
	paymentProcessDelay  = time.Second
)

type appModel struct {
	catalog *catalog.Catalog
	flow    *booking.Flow

	state     appState
	lastState appState
	err       error
	notice    string

	width  int
	height int

	movieList    list.Model
	theaterList  list.Model
	showtimeList list.Model
	bookingList  list.Model
	spinner      spinner.Model

	genreFilter    string
	languageFilter string
	theaterDetail  model.Theater

	cursorRow int
	cursorCol int

	pendingShow showtimeItem

	payMethod booking.PaymentMethod
	payInputs []textinput.Model
	payFocus  int

	authInputs      []textinput.Model
	authFocus       int
	registering     bool
	returnAfterAuth appState

	historyStatus model.BookingStatus
	historyToday  bool

	ticket model.Booking
}

type moviesLoadedMsg struct {
	movies []model.Movie
}

type showtimeConfirmedMsg struct {
	show showtimeItem
}

type processPaymentMsg struct {
	payment booking.Payment
}

type errMsg struct {
	err error
}

func New() tea.Model {
	cat := catalog.New()
	flow := booking.NewFlow(cat, store.NewBookingStore())

	if email := strings.TrimSpace(os.Getenv("CINEBOOK_USER")); email != "" {
		_ = flow.Resume(model.User{Name: "John Doe", Email: email})
	} else if user, ok, err := store.LoadCurrentUser(); err == nil && ok {
		_ = flow.Resume(user)
	}

	m := appModel{
		catalog: cat,
		flow:    flow,
		state:   stateLoadingMovies,
	}

	m.movieList = newList("Now Showing")
	m.theaterList = newList("Theaters")
	m.theaterList.SetItems(buildTheaterItems(cat.Theaters()))
	m.showtimeList = newList("Select Showtime")
	m.bookingList = newList("My Bookings")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadMoviesCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == statePayment {
			return m.updatePaymentForm(msg)
		}
		if m.state == stateSignIn {
			return m.updateAuthForm(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var handled bool
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		m.lastState = recoverStateFrom(m.state)
		m.state = stateError
		return m, nil

	case moviesLoadedMsg:
		m.movieList.SetItems(buildMovieItems(msg.movies))
		m.state = stateBrowseMovies
		return m, nil

	case showtimeConfirmedMsg:
		if err := m.flow.SelectShowtime(msg.show.theater, msg.show.time, msg.show.price); err != nil {
			return m, errCmd(err)
		}
		m.cursorRow = 0
		m.cursorCol = 1
		m.notice = ""
		m.state = stateSeatMap
		return m, nil

	case processPaymentMsg:
		return m.finishPayment(msg.payment)
	}

	var cmd tea.Cmd
	switch m.state {
	case stateBrowseMovies:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateBrowseTheaters:
		m.theaterList, cmd = m.theaterList.Update(msg)
	case stateSelectShowtime:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	case stateBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		if m.state == stateSeatMap || m.state == stateTicket || m.state == stateMovieDetails || m.state == stateTheaterDetails {
			return m, tea.Quit, true
		}
	case "tab":
		if m.state == stateBrowseMovies {
			m.state = stateBrowseTheaters
			return m, nil, true
		}
		if m.state == stateBrowseTheaters {
			m.state = stateBrowseMovies
			return m, nil, true
		}
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		return m.goBack()
	case "ctrl+b":
		if m.state == stateBrowseMovies || m.state == stateTicket {
			return m.openBookings()
		}
	case "ctrl+a":
		if m.state == stateBrowseMovies {
			if _, ok := m.flow.User(); ok {
				m.flow.SignOut()
				_ = store.ClearCurrentUser()
				m.notice = "Signed out"
				return m, nil, true
			}
			return m.openAuth(stateBrowseMovies)
		}
	case "ctrl+g":
		if m.state == stateBrowseMovies {
			m.genreFilter = nextOption(m.genreFilter, m.catalog.Genres())
			m.refreshMovieList()
			return m, nil, true
		}
	case "ctrl+l":
		if m.state == stateBrowseMovies {
			m.languageFilter = nextOption(m.languageFilter, m.catalog.Languages())
			m.refreshMovieList()
			return m, nil, true
		}
	case "ctrl+f":
		if m.state == stateBookings {
			m.historyStatus = nextStatusFilter(m.historyStatus)
			m.refreshBookingList()
			return m, nil, true
		}
	case "ctrl+d":
		if m.state == stateBookings {
			m.historyToday = !m.historyToday
			m.refreshBookingList()
			return m, nil, true
		}
	case "ctrl+x":
		if m.state == stateBookings {
			return m.cancelSelectedBooking()
		}
	}

	if m.state == stateSeatMap {
		return m.handleSeatMapKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateBrowseMovies:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			if err := m.flow.SelectMovie(item.movie.Id); err != nil {
				return m, errCmd(err), true
			}
			m.notice = ""
			m.state = stateMovieDetails
			return m, nil, true
		case stateBrowseTheaters:
			item, ok := m.theaterList.SelectedItem().(theaterItem)
			if !ok {
				return m, nil, true
			}
			theater, ok := m.catalog.TheaterByID(item.theater.Id)
			if !ok {
				return m, nil, true
			}
			m.theaterDetail = theater
			m.state = stateTheaterDetails
			return m, nil, true
		case stateTheaterDetails:
			m.state = stateBrowseTheaters
			return m, nil, true
		case stateMovieDetails:
			shows := m.catalog.ShowtimesFor(m.flow.Session().Movie.Id)
			m.showtimeList.SetItems(buildShowtimeItems(shows))
			m.showtimeList.Select(0)
			m.state = stateSelectShowtime
			return m, nil, true
		case stateSelectShowtime:
			item, ok := m.showtimeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			m.pendingShow = item
			m.state = stateConfirmingShowtime
			return m, tea.Batch(m.confirmShowtimeCmd(item), m.spinner.Tick), true
		case stateTicket:
			m.state = stateBrowseMovies
			return m, nil, true
		case stateBookings:
			item, ok := m.bookingList.SelectedItem().(bookingItem)
			if !ok {
				return m, nil, true
			}
			m.ticket = item.booking
			m.state = stateTicket
			return m, nil, true
		case stateError:
			m.err = nil
			m.state = m.lastState
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) handleSeatMapKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
		return m, nil, true
	case "down", "j":
		if m.cursorRow < booking.SeatRows-1 {
			m.cursorRow++
		}
		return m, nil, true
	case "left", "h":
		if m.cursorCol > 1 {
			m.cursorCol--
		}
		return m, nil, true
	case "right", "l":
		if m.cursorCol < booking.SeatColumns {
			m.cursorCol++
		}
		return m, nil, true
	case "enter", " ":
		seatID := booking.SeatID(m.cursorRow, m.cursorCol)
		if err := m.flow.ToggleSeat(seatID); err != nil {
			if errors.Is(err, booking.ErrSelectionLimit) {
				m.notice = "You can select maximum 10 seats"
				return m, nil, true
			}
			return m, errCmd(err), true
		}
		m.notice = ""
		return m, nil, true
	case "p":
		if err := m.flow.ProceedToPayment(); err != nil {
			if errors.Is(err, booking.ErrEmptySelection) {
				m.notice = "Please select at least one seat"
				return m, nil, true
			}
			return m, errCmd(err), true
		}
		if _, ok := m.flow.User(); !ok {
			return m.openAuth(statePayment)
		}
		m.initPaymentForm()
		m.state = statePayment
		return m, nil, true
	}
	return m, nil, true
}

func (m appModel) goBack() (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateMovieDetails, stateSeatMap, statePayment:
		// Closing an active step discards the in-progress booking.
		m.flow.Abandon()
		m.notice = ""
		m.state = stateBrowseMovies
	case stateSelectShowtime:
		m.state = stateMovieDetails
	case stateTicket, stateBookings, stateBrowseTheaters:
		m.state = stateBrowseMovies
	case stateTheaterDetails:
		m.state = stateBrowseTheaters
	case stateSignIn:
		// Sign-in may have interrupted a booking attempt; drop it so
		// the flow does not linger at the payment step.
		if m.flow.State() != booking.Browsing {
			m.flow.Abandon()
		}
		m.notice = ""
		m.state = stateBrowseMovies
	case stateError:
		m.err = nil
		m.state = m.lastState
	default:
		return m, nil, true
	}
	return m, nil, true
}

func (m appModel) openBookings() (appModel, tea.Cmd, bool) {
	if _, ok := m.flow.User(); !ok {
		return m.openAuth(stateBookings)
	}
	m.historyStatus = ""
	m.historyToday = false
	m.refreshBookingList()
	m.bookingList.Select(0)
	m.state = stateBookings
	return m, nil, true
}

func (m *appModel) refreshMovieList() {
	m.movieList.SetItems(buildMovieItems(m.catalog.FilterMovies(m.genreFilter, m.languageFilter)))
	m.movieList.Title = movieListTitle(m.genreFilter, m.languageFilter)
	m.movieList.Select(0)
}

func movieListTitle(genre string, language string) string {
	title := "Now Showing"
	if genre != "" {
		title += " • " + genre
	}
	if language != "" {
		title += " • " + language
	}
	return title
}

// nextOption cycles through options, returning to "no filter" after the
// last one.
func nextOption(current string, options []string) string {
	if current == "" {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, option := range options {
		if option == current && i+1 < len(options) {
			return options[i+1]
		}
	}
	return ""
}

func (m *appModel) refreshBookingList() {
	filter := booking.Filter{Status: m.historyStatus}
	if m.historyToday {
		filter.Date = time.Now()
	}
	m.bookingList.SetItems(buildBookingItems(m.flow.Bookings(), filter))
	m.bookingList.Title = bookingListTitle(m.historyStatus, m.historyToday)
}

func bookingListTitle(status model.BookingStatus, today bool) string {
	title := "My Bookings"
	if status != "" {
		title += " • " + string(status)
	}
	if today {
		title += " • today"
	}
	return title
}

func nextStatusFilter(status model.BookingStatus) model.BookingStatus {
	switch status {
	case "":
		return model.StatusConfirmed
	case model.StatusConfirmed:
		return model.StatusCancelled
	default:
		return ""
	}
}

func (m appModel) cancelSelectedBooking() (appModel, tea.Cmd, bool) {
	item, ok := m.bookingList.SelectedItem().(bookingItem)
	if !ok {
		return m, nil, true
	}
	if err := m.flow.CancelBooking(item.booking.Id); err != nil {
		if errors.Is(err, booking.ErrInvalidTransition) {
			m.notice = "Booking is already cancelled"
			return m, nil, true
		}
		return m, errCmd(err), true
	}
	m.notice = "Booking cancelled"
	index := m.bookingList.Index()
	m.refreshBookingList()
	if count := len(m.bookingList.Items()); count > 0 {
		if index >= count {
			index = count - 1
		}
		m.bookingList.Select(index)
	}
	return m, nil, true
}

func (m appModel) openAuth(returnTo appState) (appModel, tea.Cmd, bool) {
	m.registering = false
	m.returnAfterAuth = returnTo
	m.notice = ""
	m.initAuthForm()
	m.state = stateSignIn
	return m, nil, true
}

func (m *appModel) initAuthForm() {
	if m.registering {
		name := textinput.New()
		name.Placeholder = "Full name"
		email := textinput.New()
		email.Placeholder = "you@example.com"
		password := textinput.New()
		password.Placeholder = "Password"
		password.EchoMode = textinput.EchoPassword
		confirm := textinput.New()
		confirm.Placeholder = "Confirm password"
		confirm.EchoMode = textinput.EchoPassword
		m.authInputs = []textinput.Model{name, email, password, confirm}
	} else {
		email := textinput.New()
		email.Placeholder = "you@example.com"
		password := textinput.New()
		password.Placeholder = "Password"
		password.EchoMode = textinput.EchoPassword
		m.authInputs = []textinput.Model{email, password}
	}
	m.authFocus = 0
	m.authInputs[0].Focus()
}

func (m appModel) updateAuthForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		model, cmd, _ := m.goBack()
		return model, cmd
	case "ctrl+r":
		m.registering = !m.registering
		m.initAuthForm()
		return m, nil
	case "tab", "down":
		m.moveAuthFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveAuthFocus(-1)
		return m, nil
	case "enter":
		if m.authFocus < len(m.authInputs)-1 {
			m.moveAuthFocus(1)
			return m, nil
		}
		return m.submitAuth()
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m *appModel) moveAuthFocus(delta int) {
	m.authInputs[m.authFocus].Blur()
	m.authFocus = (m.authFocus + delta + len(m.authInputs)) % len(m.authInputs)
	m.authInputs[m.authFocus].Focus()
}

func (m appModel) submitAuth() (tea.Model, tea.Cmd) {
	var err error
	if m.registering {
		err = m.flow.Register(
			m.authInputs[0].Value(),
			m.authInputs[1].Value(),
			m.authInputs[2].Value(),
			m.authInputs[3].Value(),
		)
	} else {
		err = m.flow.SignIn(m.authInputs[0].Value(), m.authInputs[1].Value())
	}
	if err != nil {
		if errors.Is(err, booking.ErrValidationFailed) {
			m.notice = friendlyError(err)
			return m, nil
		}
		return m, errCmd(err)
	}

	if user, ok := m.flow.User(); ok {
		_ = store.SaveCurrentUser(user)
	}
	m.notice = ""

	switch m.returnAfterAuth {
	case statePayment:
		m.initPaymentForm()
		m.state = statePayment
	case stateBookings:
		m.refreshBookingList()
		m.bookingList.Select(0)
		m.state = stateBookings
	default:
		m.state = stateBrowseMovies
	}
	return m, nil
}

func (m *appModel) initPaymentForm() {
	if m.payMethod == "" {
		m.payMethod = booking.PayCredit
	}
	if m.payMethod == booking.PayCredit {
		number := textinput.New()
		number.Placeholder = "1234 5678 9012 3456"
		expiry := textinput.New()
		expiry.Placeholder = "MM/YY"
		cvv := textinput.New()
		cvv.Placeholder = "CVV"
		cvv.EchoMode = textinput.EchoPassword
		m.payInputs = []textinput.Model{number, expiry, cvv}
	} else {
		upi := textinput.New()
		upi.Placeholder = "name@upi"
		m.payInputs = []textinput.Model{upi}
	}
	m.payFocus = 0
	m.payInputs[0].Focus()
}

func (m appModel) updatePaymentForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		model, cmd, _ := m.goBack()
		return model, cmd
	case "ctrl+t":
		if m.payMethod == booking.PayCredit {
			m.payMethod = booking.PayUPI
		} else {
			m.payMethod = booking.PayCredit
		}
		m.initPaymentForm()
		return m, nil
	case "tab", "down":
		m.movePayFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.movePayFocus(-1)
		return m, nil
	case "enter":
		if m.payFocus < len(m.payInputs)-1 {
			m.movePayFocus(1)
			return m, nil
		}
		payment := m.collectPayment()
		m.state = stateProcessingPayment
		return m, tea.Batch(m.processPaymentCmd(payment), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.payInputs[m.payFocus], cmd = m.payInputs[m.payFocus].Update(msg)
	return m, cmd
}

func (m *appModel) movePayFocus(delta int) {
	m.payInputs[m.payFocus].Blur()
	m.payFocus = (m.payFocus + delta + len(m.payInputs)) % len(m.payInputs)
	m.payInputs[m.payFocus].Focus()
}

func (m appModel) collectPayment() booking.Payment {
	payment := booking.Payment{Method: m.payMethod}
	if m.payMethod == booking.PayCredit {
		payment.CardNumber = m.payInputs[0].Value()
		payment.CardExpiry = m.payInputs[1].Value()
		payment.CardCVV = m.payInputs[2].Value()
	} else {
		payment.UPIID = m.payInputs[0].Value()
	}
	return payment
}

func (m appModel) finishPayment(payment booking.Payment) (tea.Model, tea.Cmd) {
	record, err := m.flow.SubmitPayment(payment)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrValidationFailed):
			m.notice = friendlyError(err)
			m.initPaymentForm()
			m.state = statePayment
			return m, nil
		case errors.Is(err, booking.ErrNotSignedIn):
			model, cmd, _ := m.openAuth(statePayment)
			return model, cmd
		default:
			return m, errCmd(err)
		}
	}
	m.ticket = record
	m.notice = ""
	m.state = stateTicket
	return m, nil
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateBrowseMovies:
		return &m.movieList
	case stateBrowseTheaters:
		return &m.theaterList
	case stateSelectShowtime:
		return &m.showtimeList
	case stateBookings:
		return &m.bookingList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	return m.state == stateLoadingMovies ||
		m.state == stateConfirmingShowtime ||
		m.state == stateProcessingPayment
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.theaterList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingMovies:
		return stateBrowseMovies
	case stateConfirmingShowtime:
		return stateSelectShowtime
	case stateProcessingPayment:
		return statePayment
	case stateError:
		return stateBrowseMovies
	default:
		return state
	}
}

func friendlyError(err error) string {
	text := err.Error()
	if idx := strings.LastIndex(text, ": "); idx >= 0 {
		text = text[idx+2:]
	}
	if text == "" {
		return "invalid input"
	}
	return strings.ToUpper(text[:1]) + text[1:]
}

func (m appModel) loadMoviesCmd() tea.Cmd {
	return tea.Tick(catalogLoadDelay, func(time.Time) tea.Msg {
		return moviesLoadedMsg{movies: m.catalog.Movies()}
	})
}

func (m appModel) confirmShowtimeCmd(show showtimeItem) tea.Cmd {
	return tea.Tick(showtimeConfirmDelay, func(time.Time) tea.Msg {
		return showtimeConfirmedMsg{show: show}
	})
}

func (m appModel) processPaymentCmd(payment booking.Payment) tea.Cmd {
	return tea.Tick(paymentProcessDelay, func(time.Time) tea.Msg {
		return processPaymentMsg{payment: payment}
	})
}
