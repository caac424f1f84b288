package entity

// RoomCapacity is the per-room-type occupancy aggregate shown on the
// dashboard, refreshed after every mutating operation.
type RoomCapacity struct {
	Total     int `json:"total"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

// CapacityOverview maps a room type (General, ICU, ...) to its counts.
type CapacityOverview map[string]RoomCapacity
