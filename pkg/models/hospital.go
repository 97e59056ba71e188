package models

import "fmt"

// Hospital is one static map point for the nearby-hospitals view.
type Hospital struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// DisplayLine renders the hospital as a text list entry.
func (h Hospital) DisplayLine() string {
	return fmt.Sprintf("%s (Lat: %g, Lon: %g)", h.Name, h.Latitude, h.Longitude)
}

// Hospitals returns the fixed nearby-hospital records (Lahore).
func Hospitals() []Hospital {
	return []Hospital{
		{Name: "Shaukat Khanum Hospital", Latitude: 31.5204, Longitude: 74.3587},
		{Name: "Mayo Hospital", Latitude: 31.5091, Longitude: 74.3306},
		{Name: "Jinnah Hospital", Latitude: 31.5330, Longitude: 74.3667},
	}
}
