package api

// Identity is the authenticated user's profile as returned by the identity
// service.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
}

// Store is a physical location housing one or more pods.
type Store struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	OpenHours   string `json:"open_hours"`
	Description string `json:"description"` // markdown
}

// Pod is a bookable workspace unit inside a store.
type Pod struct {
	ID       string `json:"id"`
	StoreID  string `json:"store_id"`
	Name     string `json:"name"`
	PodType  string `json:"pod_type"` // "single" or "group"
	Capacity int    `json:"capacity"`
}

// Slot is a fixed time interval at a pod with a price and availability flag.
type Slot struct {
	SlotID      string `json:"slot_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	UnitPrice   int64  `json:"unit_price"`
	IsAvailable bool   `json:"is_available"`
}

// SlotSelection pairs a date with the slot ids chosen for it.
type SlotSelection struct {
	Date    string   `json:"date"` // YYYY-MM-DD
	SlotIDs []string `json:"slot_ids"`
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	PodID      string          `json:"pod_id"`
	Selections []SlotSelection `json:"selections"`
}

// Payment is a single payment record attached to a booking.
type Payment struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
	PaidAt string `json:"paid_at,omitempty"`
}

// Booking is a confirmed or pending reservation with its payment records.
type Booking struct {
	ID         string          `json:"id"`
	PodID      string          `json:"pod_id"`
	PodName    string          `json:"pod_name,omitempty"`
	StoreName  string          `json:"store_name,omitempty"`
	Status     string          `json:"status"`
	Selections []SlotSelection `json:"selections,omitempty"`
	Payments   []Payment       `json:"payments,omitempty"`
	CreatedAt  string          `json:"created_at,omitempty"`
}

// TotalPaid sums the recorded payment amounts for a booking. Every payment
// contributes its own recorded amount; there is no per-position special
// handling.
func (b Booking) TotalPaid() int64 {
	var total int64
	for _, p := range b.Payments {
		total += p.Amount
	}
	return total
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
}
