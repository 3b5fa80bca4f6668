package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cinebook-tui/booking"
)

type testItem struct {
	value string
}

func (t testItem) Title() string       { return t.value }
func (t testItem) Description() string { return "" }
func (t testItem) FilterValue() string { return strings.ToLower(t.value) }

func isolateEnv(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("CINEBOOK_USER", "")
}

func newTestApp(t *testing.T) *appModel {
	t.Helper()
	isolateEnv(t)
	model := New().(appModel)
	return &model
}

func newFilterModel(t *testing.T, items []list.Item) *appModel {
	model := newTestApp(t)
	model.state = stateBrowseMovies
	model.movieList = newList("Now Showing")
	model.movieList.SetItems(items)
	return model
}

func TestHandleFilterInput_AppendsRunes(t *testing.T) {
	m := newFilterModel(t, []list.Item{
		testItem{value: "Dangal"},
		testItem{value: "The Dark Knight"},
	})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.movieList.FilterValue(); got != "d" {
		t.Fatalf("expected filter value to be %q, got %q", "d", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.movieList.FilterValue(); got != "da" {
		t.Fatalf("expected filter value to be %q, got %q", "da", got)
	}
}

func TestHandleFilterInput_Backspace(t *testing.T) {
	m := newFilterModel(t, []list.Item{
		testItem{value: "Dangal"},
		testItem{value: "The Dark Knight"},
	})

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	if got := m.movieList.FilterValue(); got != "da" {
		t.Fatalf("expected filter value to be %q, got %q", "da", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if got := m.movieList.FilterValue(); got != "d" {
		t.Fatalf("expected filter value to be %q, got %q", "d", got)
	}
}

func TestHandleFilterInput_Space(t *testing.T) {
	m := newFilterModel(t, []list.Item{
		testItem{value: "The Dark Knight"},
	})

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeySpace}) {
		t.Fatal("expected space to be handled")
	}

	if got := m.movieList.FilterValue(); got != "the " {
		t.Fatalf("expected filter value to be %q, got %q", "the ", got)
	}
}

func TestHandleFilterInput_IgnoredOutsideListStates(t *testing.T) {
	m := newTestApp(t)
	m.state = stateSeatMap

	if m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}) {
		t.Fatal("expected seat map keys to pass through the filter")
	}
}

func newSeatMapModel(t *testing.T) *appModel {
	t.Helper()
	m := newTestApp(t)
	if err := m.flow.SelectMovie(1); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := m.flow.SelectShowtime("PVR Cinemas", "10:00 AM", 250); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	m.state = stateSeatMap
	m.cursorRow = 0
	m.cursorCol = 1
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSeatMapCursor_StaysInBounds(t *testing.T) {
	m := newSeatMapModel(t)

	got, _, _ := m.handleSeatMapKey(key("h"))
	if got.cursorCol != 1 {
		t.Fatalf("expected cursor pinned at column 1, got %d", got.cursorCol)
	}
	got, _, _ = got.handleSeatMapKey(key("k"))
	if got.cursorRow != 0 {
		t.Fatalf("expected cursor pinned at row 0, got %d", got.cursorRow)
	}

	for i := 0; i < booking.SeatColumns+5; i++ {
		got, _, _ = got.handleSeatMapKey(key("l"))
	}
	if got.cursorCol != booking.SeatColumns {
		t.Fatalf("expected cursor capped at column %d, got %d", booking.SeatColumns, got.cursorCol)
	}

	for i := 0; i < booking.SeatRows+5; i++ {
		got, _, _ = got.handleSeatMapKey(key("j"))
	}
	if got.cursorRow != booking.SeatRows-1 {
		t.Fatalf("expected cursor capped at row %d, got %d", booking.SeatRows-1, got.cursorRow)
	}
}

func TestSeatMapToggle_SelectsSeatUnderCursor(t *testing.T) {
	m := newSeatMapModel(t)
	m.cursorRow = 0
	m.cursorCol = 5

	got, _, handled := m.handleSeatMapKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !handled {
		t.Fatal("expected enter to be handled")
	}

	seats := got.flow.Session().Seats.Selected()
	if len(seats) != 1 || seats[0] != "A5" {
		t.Fatalf("expected A5 selected, got %v", seats)
	}
	if got.flow.State() != booking.SeatsSelected {
		t.Fatalf("expected SeatsSelected, got %s", got.flow.State())
	}
}

func TestSeatMapToggle_LimitShowsNotice(t *testing.T) {
	m := newSeatMapModel(t)

	// Fill row H, which has no occupied demo seats.
	for c := 1; c <= booking.MaxSeatsPerBooking; c++ {
		if err := m.flow.ToggleSeat(booking.SeatID(7, c)); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}

	m.cursorRow = 7
	m.cursorCol = 11
	got, _, _ := m.handleSeatMapKey(tea.KeyMsg{Type: tea.KeyEnter})
	if got.notice != "You can select maximum 10 seats" {
		t.Fatalf("expected limit notice, got %q", got.notice)
	}
}

func TestSeatMapProceed_RequiresSelection(t *testing.T) {
	m := newSeatMapModel(t)

	got, _, _ := m.handleSeatMapKey(key("p"))
	if got.notice != "Please select at least one seat" {
		t.Fatalf("expected empty selection notice, got %q", got.notice)
	}
	if got.state != stateSeatMap {
		t.Fatal("expected to stay on the seat map")
	}
}

func TestSeatMapProceed_UnsignedUserGoesToSignIn(t *testing.T) {
	m := newSeatMapModel(t)
	_ = m.flow.ToggleSeat("A5")

	got, _, _ := m.handleSeatMapKey(key("p"))
	if got.state != stateSignIn {
		t.Fatalf("expected sign-in state, got %d", got.state)
	}
	if got.returnAfterAuth != statePayment {
		t.Fatal("expected to return to payment after signing in")
	}
}

func TestGoBack_AbandonsActiveBooking(t *testing.T) {
	m := newSeatMapModel(t)
	_ = m.flow.ToggleSeat("A5")

	got, _, _ := m.goBack()
	if got.state != stateBrowseMovies {
		t.Fatalf("expected browse state, got %d", got.state)
	}
	if got.flow.State() != booking.Browsing {
		t.Fatalf("expected flow back to Browsing, got %s", got.flow.State())
	}
}

func TestGoBack_SignInMidBookingAbandons(t *testing.T) {
	m := newSeatMapModel(t)
	_ = m.flow.ToggleSeat("A5")

	got, _, _ := m.handleSeatMapKey(key("p"))
	if got.state != stateSignIn {
		t.Fatalf("expected sign-in state, got %d", got.state)
	}

	got, _, _ = got.goBack()
	if got.state != stateBrowseMovies {
		t.Fatalf("expected browse state, got %d", got.state)
	}
	if got.flow.State() != booking.Browsing {
		t.Fatalf("expected flow back to Browsing, got %s", got.flow.State())
	}
	if session := got.flow.Session(); session.Movie.Id != 0 {
		t.Fatalf("expected session discarded, got %+v", session)
	}
}

func TestTheatersScreen(t *testing.T) {
	m := newTestApp(t)
	m.state = stateBrowseMovies

	got, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if !handled || got.state != stateBrowseTheaters {
		t.Fatalf("expected theaters state, got %d (handled=%v)", got.state, handled)
	}
	if count := len(got.theaterList.Items()); count != 3 {
		t.Fatalf("expected 3 theaters listed, got %d", count)
	}

	got, _, _ = got.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if got.state != stateTheaterDetails {
		t.Fatalf("expected theater details, got %d", got.state)
	}
	if got.theaterDetail.Name != "PVR Cinemas" {
		t.Fatalf("expected PVR Cinemas, got %q", got.theaterDetail.Name)
	}

	got, _, _ = got.goBack()
	if got.state != stateBrowseTheaters {
		t.Fatalf("expected theaters list, got %d", got.state)
	}
	got, _, _ = got.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if got.state != stateBrowseMovies {
		t.Fatalf("expected movie list, got %d", got.state)
	}
}

func TestMovieLanguageFilter_Cycles(t *testing.T) {
	m := newTestApp(t)
	m.state = stateBrowseMovies
	m.movieList.SetItems(buildMovieItems(m.catalog.Movies()))

	got, _, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlL})
	if got.languageFilter != "English" {
		t.Fatalf("expected English filter, got %q", got.languageFilter)
	}
	if count := len(got.movieList.Items()); count != 3 {
		t.Fatalf("expected 3 English movies, got %d", count)
	}

	got, _, _ = got.handleKey(tea.KeyMsg{Type: tea.KeyCtrlL})
	if got.languageFilter != "Hindi" {
		t.Fatalf("expected Hindi filter, got %q", got.languageFilter)
	}
	if count := len(got.movieList.Items()); count != 3 {
		t.Fatalf("expected 3 Hindi movies, got %d", count)
	}

	got, _, _ = got.handleKey(tea.KeyMsg{Type: tea.KeyCtrlL})
	if got.languageFilter != "" {
		t.Fatalf("expected filter cleared, got %q", got.languageFilter)
	}
	if count := len(got.movieList.Items()); count != 4 {
		t.Fatalf("expected all 4 movies, got %d", count)
	}
}

func TestMovieGenreFilter(t *testing.T) {
	m := newTestApp(t)
	m.state = stateBrowseMovies
	m.movieList.SetItems(buildMovieItems(m.catalog.Movies()))

	got, _, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlG})
	if got.genreFilter != "Action" {
		t.Fatalf("expected Action filter, got %q", got.genreFilter)
	}
	if count := len(got.movieList.Items()); count != 3 {
		t.Fatalf("expected 3 action movies, got %d", count)
	}
	if !strings.Contains(got.movieList.Title, "Action") {
		t.Fatalf("expected title to show the filter, got %q", got.movieList.Title)
	}
}

func TestNextOption(t *testing.T) {
	options := []string{"a", "b"}
	if got := nextOption("", options); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := nextOption("a", options); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := nextOption("b", options); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := nextOption("", nil); got != "" {
		t.Fatalf("expected empty for no options, got %q", got)
	}
}

func TestNextStatusFilter_Cycles(t *testing.T) {
	status := nextStatusFilter("")
	if status != "confirmed" {
		t.Fatalf("expected confirmed, got %s", status)
	}
	status = nextStatusFilter(status)
	if status != "cancelled" {
		t.Fatalf("expected cancelled, got %s", status)
	}
	if status = nextStatusFilter(status); status != "" {
		t.Fatalf("expected filter cleared, got %s", status)
	}
}

func TestFriendlyError(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"validation failed: passwords do not match", "Passwords do not match"},
		{"card details required", "Card details required"},
	}
	for _, tc := range cases {
		if got := friendlyError(errString(tc.in)); got != tc.want {
			t.Fatalf("friendlyError(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

type errString string

func (e errString) Error() string { return string(e) }
