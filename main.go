package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"

	"cinebook-tui/catalog"
	"cinebook-tui/model"
	"cinebook-tui/store"
	"cinebook-tui/tui"
)

const appName = "cinebook-tui"

var (
	version = "dev"
	commit  = "none"
)

func printUsage(out *os.File) {
	fmt.Fprintf(out, "Usage: %s [--version] [--history] [--movies [query]]\n", appName)
}

func printVersion() {
	fmt.Printf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		fmt.Printf(" (%s)", commit)
	}
	fmt.Println()
}

func handleArgs(args []string) bool {
	if len(args) == 0 {
		return true
	}

	for i, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			printUsage(os.Stdout)
			return false
		case "-v", "--version", "version":
			printVersion()
			return false
		case "--history", "history":
			if err := printHistory(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return false
		case "--movies", "movies":
			printMovies(strings.Join(args[i+1:], " "))
			return false
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", arg)
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}

	return false
}

// printMovies lists catalog movies matching the query (all of them when
// the query is empty) without starting the TUI.
func printMovies(query string) {
	movies := catalog.New().SearchMovies(query)
	if len(movies) == 0 {
		fmt.Printf("No movies match %q.\n", query)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Title", "Genre", "Rating", "Languages", "Duration"})
	for _, m := range movies {
		t.AppendRow(table.Row{
			m.Id,
			m.Title,
			m.Genre,
			fmt.Sprintf("%.1f", m.Rating),
			strings.Join(m.Languages, ", "),
			m.Duration,
		})
	}
	t.Render()
}

// printHistory dumps the signed-in user's booking history as a table
// without starting the TUI.
func printHistory() error {
	user, ok, err := currentUser()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No user signed in. Run the app and sign in first, or set CINEBOOK_USER.")
		return nil
	}

	bookings, err := store.NewBookingStore().Load(user.Email)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Printf("No bookings found for %s.\n", user.Email)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Booking ID", "Movie", "Theater", "Showtime", "Seats", "Total", "Booked", "Status"})
	for _, b := range bookings {
		t.AppendRow(table.Row{
			b.Id,
			b.Movie.Title,
			b.Theater,
			b.Showtime,
			strings.Join(b.Seats, ", "),
			fmt.Sprintf("₹%d", b.TotalAmount),
			b.BookingDate.Format(time.DateOnly),
			b.Status,
		})
	}
	t.Render()
	return nil
}

func currentUser() (model.User, bool, error) {
	if email := strings.TrimSpace(os.Getenv("CINEBOOK_USER")); email != "" {
		return model.User{Name: "John Doe", Email: email}, true, nil
	}
	return store.LoadCurrentUser()
}

func main() {
	if !handleArgs(os.Args[1:]) {
		return
	}

	if _, err := tea.NewProgram(tui.New(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
