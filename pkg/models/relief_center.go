package models

// ReliefCenter is one row of ReliefCenters.csv. The table is reference
// data loaded wholesale and never written back; duplicate rows are legal
// and all of them appear in results.
type ReliefCenter struct {
	Province     string  `json:"province"`
	ProvinceFull string  `json:"province_full"`
	City         string  `json:"city"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	DistanceKm   float64 `json:"distance_km"`
	Contact      string  `json:"contact"`
}
