package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"cinebook-tui/booking"
	"cinebook-tui/model"
)

type movieItem struct {
	movie model.Movie
}

func (m movieItem) Title() string {
	return m.movie.Title
}

func (m movieItem) Description() string {
	stars := strings.Repeat("★", int(m.movie.Rating)) + strings.Repeat("☆", 5-int(m.movie.Rating))
	return fmt.Sprintf("%s • %s • %s %.1f/5", m.movie.Genre, m.movie.Duration, stars, m.movie.Rating)
}

func (m movieItem) FilterValue() string {
	parts := append([]string{m.movie.Title, m.movie.Genre}, m.movie.Languages...)
	return strings.ToLower(strings.Join(parts, " "))
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

type theaterItem struct {
	theater model.Theater
}

func (t theaterItem) Title() string {
	return t.theater.Name
}

func (t theaterItem) Description() string {
	return fmt.Sprintf("%s • %s", t.theater.Location, strings.Join(t.theater.Facilities, ", "))
}

func (t theaterItem) FilterValue() string {
	return strings.ToLower(t.theater.Name + " " + t.theater.Location)
}

func buildTheaterItems(theaters []model.Theater) []list.Item {
	items := make([]list.Item, 0, len(theaters))
	for _, theater := range theaters {
		items = append(items, theaterItem{theater: theater})
	}
	return items
}

// showtimeItem is one bookable (theater, time) pair.
type showtimeItem struct {
	theater string
	time    string
	price   int
}

func (s showtimeItem) Title() string {
	return fmt.Sprintf("%s • %s", s.time, s.theater)
}

func (s showtimeItem) Description() string {
	return fmt.Sprintf("₹%d per ticket", s.price)
}

func (s showtimeItem) FilterValue() string {
	return strings.ToLower(s.theater + " " + s.time)
}

func buildShowtimeItems(shows []model.Showtime) []list.Item {
	var items []list.Item
	for _, show := range shows {
		for _, t := range show.Times {
			items = append(items, showtimeItem{theater: show.Theater, time: t, price: show.Price})
		}
	}
	return items
}

type bookingItem struct {
	booking model.Booking
}

func (b bookingItem) Title() string {
	status := strings.ToUpper(string(b.booking.Status))
	return fmt.Sprintf("%s • %s [%s]", b.booking.Movie.Title, b.booking.Showtime, status)
}

func (b bookingItem) Description() string {
	return fmt.Sprintf("%s • seats %s • ₹%d • %s • %s",
		b.booking.Theater,
		strings.Join(b.booking.Seats, ", "),
		b.booking.TotalAmount,
		b.booking.BookingDate.Format(time.DateOnly),
		b.booking.Id,
	)
}

func (b bookingItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{
		b.booking.Movie.Title,
		b.booking.Theater,
		string(b.booking.Status),
		b.booking.Id,
	}, " "))
}

func buildBookingItems(bookings []model.Booking, filter booking.Filter) []list.Item {
	filtered := booking.FilterBookings(bookings, filter)
	items := make([]list.Item, 0, len(filtered))
	for _, b := range filtered {
		items = append(items, bookingItem{booking: b})
	}
	return items
}
