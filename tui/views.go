package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cinebook-tui/booking"
)

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoadingMovies, stateConfirmingShowtime, stateProcessingPayment:
		return header + "\n\n" + m.loadingView()
	case stateBrowseMovies:
		return header + "\n\n" + m.movieList.View()
	case stateBrowseTheaters:
		return header + "\n\n" + m.theaterList.View()
	case stateTheaterDetails:
		return header + "\n\n" + m.theaterDetailsView()
	case stateMovieDetails:
		return header + "\n\n" + m.movieDetailsView()
	case stateSelectShowtime:
		return header + "\n\n" + m.showtimeList.View()
	case stateSeatMap:
		return header + "\n\n" + m.seatMapView()
	case statePayment:
		return header + "\n\n" + m.paymentView()
	case stateSignIn:
		return header + "\n\n" + m.authView()
	case stateTicket:
		return header + "\n\n" + m.ticketView()
	case stateBookings:
		return header + "\n\n" + m.bookingsView()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(errorText(m.err)) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func errorText(err error) string {
	if err == nil {
		return "something went wrong"
	}
	return err.Error()
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("CineBook")
	sub := []string{}
	if user, ok := m.flow.User(); ok {
		sub = append(sub, fmt.Sprintf("User: %s", user.Name))
	}
	session := m.flow.Session()
	if session.Movie.Title != "" {
		sub = append(sub, fmt.Sprintf("Movie: %s", session.Movie.Title))
	}
	if session.Theater != "" {
		sub = append(sub, fmt.Sprintf("Theater: %s", session.Theater))
	}
	if session.Showtime != "" {
		sub = append(sub, fmt.Sprintf("Showtime: %s", session.Showtime))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back"
	switch m.state {
	case stateBrowseMovies:
		hints = "ctrl+c quit • type to filter • enter book tickets • tab theaters • ctrl+g genre • ctrl+l language • ctrl+b my bookings • ctrl+a sign in/out"
	case stateBrowseTheaters:
		hints = "ctrl+c quit • esc back • type to filter • enter details • tab movies"
	case stateTheaterDetails:
		hints = "ctrl+c quit • esc back"
	case stateMovieDetails:
		hints = "ctrl+c quit • esc back • enter select showtime"
	case stateSelectShowtime:
		hints = "ctrl+c quit • esc back • type to filter • enter pick seats"
	case stateSeatMap:
		hints = "esc cancel • arrows move • enter/space toggle seat • p proceed to payment"
	case statePayment:
		hints = "esc cancel • tab next field • ctrl+t switch method • enter pay"
	case stateSignIn:
		hints = "esc back • tab next field • ctrl+r toggle sign in/register • enter submit"
	case stateTicket:
		hints = "esc back to movies • ctrl+b my bookings"
	case stateBookings:
		hints = "esc back • type to filter • enter view • ctrl+x cancel booking • ctrl+f status filter • ctrl+d today only"
	}

	noticeLine := ""
	if m.notice != "" {
		noticeLine = "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(m.notice)
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + noticeLine + filterLine + "\n" + hint(hints)
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateLoadingMovies:
		title = "Loading movies"
	case stateConfirmingShowtime:
		title = fmt.Sprintf("Confirming %s at %s", m.pendingShow.time, m.pendingShow.theater)
	case stateProcessingPayment:
		title = "Processing payment"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Please wait..."))
}

func (m appModel) movieDetailsView() string {
	movie := m.flow.Session().Movie
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(movie.Title),
		"",
		fmt.Sprintf("Genre:        %s", movie.Genre),
		fmt.Sprintf("Duration:     %s", movie.Duration),
		fmt.Sprintf("Rating:       %.1f/5", movie.Rating),
		fmt.Sprintf("Languages:    %s", strings.Join(movie.Languages, ", ")),
		fmt.Sprintf("Release Date: %s", movie.ReleaseDate),
		"",
		movie.Description,
		"",
		hint("Press enter to select a showtime."),
	}
	return strings.Join(lines, "\n")
}

func (m appModel) theaterDetailsView() string {
	theater := m.theaterDetail
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(theater.Name),
		"",
		fmt.Sprintf("Location:   %s", theater.Location),
		fmt.Sprintf("Facilities: %s", strings.Join(theater.Facilities, ", ")),
		"",
		hint("Press esc to go back."),
	}
	return strings.Join(lines, "\n")
}

func (m appModel) seatMapView() string {
	session := m.flow.Session()
	if session.Seats == nil {
		return "No seat map data."
	}

	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	seatStyleOccupied := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	cursorStyle := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))

	var b strings.Builder

	b.WriteString("   ")
	for c := 1; c <= booking.SeatColumns; c++ {
		b.WriteString(fmt.Sprintf("%2d ", c))
	}
	b.WriteString("\n")

	for r := 0; r < booking.SeatRows; r++ {
		label := string(rune('A' + r))
		b.WriteString(fmt.Sprintf("%2s ", label))
		for c := 1; c <= booking.SeatColumns; c++ {
			seatID := booking.SeatID(r, c)
			status, _ := session.Seats.Status(seatID)

			var token string
			var style lipgloss.Style
			switch status {
			case booking.SeatOccupied:
				token, style = "XX", seatStyleOccupied
			case booking.SeatSelected:
				token, style = "{}", seatStyleSelected
			default:
				token, style = "[]", seatStyleAvailable
			}
			if r == m.cursorRow && c == m.cursorCol {
				style = cursorStyle
			}
			b.WriteString(style.Render(token))
			if c < booking.SeatColumns {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %s\n", label))
	}

	gridWidth := booking.SeatColumns*3 - 1
	screen := screenBarBlock(gridWidth, "SCREEN")
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	b.WriteString("\n")
	b.WriteString("   " + screenBorderStyle.Render(screen.top) + "\n")
	b.WriteString("   " + screenStyle.Render(screen.mid) + "\n")
	b.WriteString("   " + screenBorderStyle.Render(screen.bot) + "\n\n")

	selected := session.Seats.Selected()
	totals := m.flow.Totals()
	seatsLabel := "None"
	if len(selected) > 0 {
		seatsLabel = strings.Join(selected, ", ")
	}
	summary := fmt.Sprintf("Seats: %s • Tickets: %d × ₹%d • Convenience Fee: ₹%d • Total: ₹%d",
		seatsLabel, len(selected), session.TicketPrice, totals.ConvenienceFee, totals.Total)

	legend := "Legend: [] available • {} selected • XX occupied"
	return b.String() + hint(legend) + "\n" + summary
}

func (m appModel) paymentView() string {
	session := m.flow.Session()
	totals := m.flow.Totals()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Booking Summary"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Movie:           %s\n", session.Movie.Title))
	b.WriteString(fmt.Sprintf("Theater:         %s\n", session.Theater))
	b.WriteString(fmt.Sprintf("Showtime:        %s\n", session.Showtime))
	if session.Seats != nil {
		seats := session.Seats.Selected()
		b.WriteString(fmt.Sprintf("Seats:           %s\n", strings.Join(seats, ", ")))
		b.WriteString(fmt.Sprintf("Tickets:         %d × ₹%d\n", len(seats), session.TicketPrice))
	}
	b.WriteString(fmt.Sprintf("Convenience Fee: ₹%d\n", totals.ConvenienceFee))
	b.WriteString(fmt.Sprintf("Total Amount:    ₹%d\n", totals.Total))
	b.WriteString("\n")

	method := "Credit/Debit Card"
	labels := []string{"Card Number", "Expiry", "CVV"}
	if m.payMethod == booking.PayUPI {
		method = "UPI"
		labels = []string{"UPI ID"}
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Payment Method: " + method))
	b.WriteString("\n\n")
	for i, input := range m.payInputs {
		b.WriteString(fmt.Sprintf("%-12s %s\n", labels[i]+":", input.View()))
	}
	return b.String()
}

func (m appModel) authView() string {
	title := "Sign In"
	labels := []string{"Email", "Password"}
	if m.registering {
		title = "Create Account"
		labels = []string{"Name", "Email", "Password", "Confirm"}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")
	for i, input := range m.authInputs {
		b.WriteString(fmt.Sprintf("%-10s %s\n", labels[i]+":", input.View()))
	}
	b.WriteString("\n")
	b.WriteString(hint("Any non-empty credentials work in this demo."))
	return b.String()
}

func (m appModel) ticketView() string {
	t := m.ticket
	showDate := t.BookingDate.AddDate(0, 0, 1)

	rows := []string{
		lipgloss.NewStyle().Bold(true).Render("Booking Confirmed!"),
		"",
		fmt.Sprintf("Booking ID:      %s", t.Id),
		fmt.Sprintf("Movie:           %s", t.Movie.Title),
		fmt.Sprintf("Theater:         %s", t.Theater),
		fmt.Sprintf("Show Date:       %s", showDate.Format("Mon Jan 02 2006")),
		fmt.Sprintf("Show Time:       %s", t.Showtime),
		fmt.Sprintf("Seats:           %s", strings.Join(t.Seats, ", ")),
		fmt.Sprintf("Tickets:         %d × ₹%d", len(t.Seats), t.TicketPrice),
		fmt.Sprintf("Convenience Fee: ₹%d", t.ConvenienceFee),
		fmt.Sprintf("Total Paid:      ₹%d", t.TotalAmount),
		fmt.Sprintf("Status:          %s", strings.ToUpper(string(t.Status))),
		"",
		hint("Please arrive 30 minutes before showtime."),
		hint(fmt.Sprintf("Booked on %s", t.BookingDate.Format(time.RFC1123))),
	}

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(strings.Join(rows, "\n"))
	if m.width > 0 {
		panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
	}
	return panel
}

func (m appModel) bookingsView() string {
	if len(m.bookingList.Items()) == 0 {
		empty := "No bookings found."
		if m.historyStatus != "" || m.historyToday {
			empty = "No bookings match the current filters."
		}
		return m.bookingList.View() + "\n" + hint(empty)
	}
	return m.bookingList.View()
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
