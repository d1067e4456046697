package models

// Lead is a prospective customer's contact record. Leads are append-only and
// owned by the external store; the score travels as a string because the
// sheet stores every cell as text.
type Lead struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Score     string `json:"score"`
	Interest  string `json:"interest"`
	Timestamp string `json:"timestamp"` // "2006-01-02 15:04:05"
}
