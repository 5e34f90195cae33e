package entity

// OpenStatus is the result of evaluating a facility's schedule against an
// instant. It is derived per query and never persisted.
type OpenStatus struct {
	IsOpen bool `json:"is_open"`
	// Message is a short human-readable status line. When the facility is
	// open it names the closing time; otherwise it states why it is closed
	// ("closed", "closed (no hours on record)", "closed (invalid time format)").
	Message string `json:"message"`
	// ActiveSlot is the 1-8 schedule slot the evaluation selected.
	ActiveSlot int `json:"active_slot"`
}
