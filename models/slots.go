package models

// Slot is a derived, ephemeral bookable interval start. It is never
// persisted; it exists only for the duration of one availability query.
type Slot struct {
	Time      string `json:"time"`    // 24h "15:04"
	Display   string `json:"display"` // 12h, no leading zero: "9:30 AM"
	Available bool   `json:"available"`
}
