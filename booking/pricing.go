package booking

// ConvenienceFeePerSeat is the fixed per-seat surcharge added at
// checkout, in the same currency unit as the ticket price.
const ConvenienceFeePerSeat = 20

type Totals struct {
	Subtotal       int
	ConvenienceFee int
	Total          int
}

// ComputeTotals derives the checkout amounts from the selected seat
// count and the per-ticket price. Zero seats yields all zeroes.
func ComputeTotals(selectedSeats int, ticketPrice int) Totals {
	if selectedSeats <= 0 {
		return Totals{}
	}
	subtotal := selectedSeats * ticketPrice
	fee := selectedSeats * ConvenienceFeePerSeat
	return Totals{
		Subtotal:       subtotal,
		ConvenienceFee: fee,
		Total:          subtotal + fee,
	}
}
