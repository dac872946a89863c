package invoice

// Status represents the lifecycle state of an invoice.
//
// State transitions:
//
//	Cart ──> Placed ──> Shipped
//	  │        │
//	  └────────┴──> deleted (side transition, blocked once Shipped)
//
// Status is derived from the payment and shipment dates rather than stored:
// an invoice with no payment date is a cart, a paid unshipped invoice is
// placed, and a shipped invoice is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// StatusCart is the initial status: a draft order that is still being edited.
	StatusCart

	// StatusPlaced indicates payment has been recorded; line items are frozen.
	StatusPlaced

	// StatusShipped indicates the invoice left the warehouse. Terminal and
	// fully immutable, line items included.
	StatusShipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		StatusCart:    "Cart",
		StatusPlaced:  "Placed",
		StatusShipped: "Shipped",
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
