package model

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is the durable record of a completed purchase. Everything
// except Status is immutable once created; Status only moves from
// confirmed to cancelled.
type Booking struct {
	Id             string        `json:"id"`
	Movie          Movie         `json:"movie"`
	Theater        string        `json:"theater"`
	Showtime       string        `json:"showtime"`
	Seats          []string      `json:"seats"`
	TicketPrice    int           `json:"ticketPrice"`
	ConvenienceFee int           `json:"convenienceFee"`
	TotalAmount    int           `json:"totalAmount"`
	BookingDate    time.Time     `json:"bookingDate"`
	Status         BookingStatus `json:"status"`
	PaymentMethod  string        `json:"paymentMethod"`
}

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
