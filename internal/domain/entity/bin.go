package entity

// FillLevelReading is one point of a bin's fill-level history.
type FillLevelReading struct {
	Level     float64 `json:"level"`
	Timestamp int64   `json:"timestamp"`
}

// SmartBin mirrors one node of the "bins" collection in the realtime
// database. Snapshots arrive as whole nodes on every change, not deltas.
type SmartBin struct {
	ID          string             `json:"id"`
	Location    string             `json:"location"`
	Category    WasteCategory      `json:"category,omitempty"`
	FillLevel   float64            `json:"fillLevel"`
	LastUpdated int64              `json:"lastUpdated"`
	Levels      []FillLevelReading `json:"levels,omitempty"`
}
