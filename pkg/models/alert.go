package models

// RadiusNA is the sentinel radius stored when the broadcast input
// was not a plain number of kilometers.
const RadiusNA = "N/A"

// AlertRecord is one broadcast alert as stored in AlertData.csv.
// Records are append-only and kept in insertion order. Date is the raw
// CSV cell; historical rows may carry arbitrary text, so it is never
// parsed on read.
type AlertRecord struct {
	Date     string `json:"date"`
	Location string `json:"location"`
	Radius   string `json:"radius_km"`
	Message  string `json:"message"`
}
