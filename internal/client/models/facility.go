package models

// OccupancyLevel buckets an occupancy percentage for display.
type OccupancyLevel string

const (
	OccupancyLow      OccupancyLevel = "low"
	OccupancyModerate OccupancyLevel = "moderate"
	OccupancyHigh     OccupancyLevel = "high"
	OccupancyFull     OccupancyLevel = "full"
)

// LevelFor maps a percentage to its bucket: <=40 low, <=70 moderate,
// <=90 high, above that full.
func LevelFor(pct float64) OccupancyLevel {
	switch {
	case pct <= 40:
		return OccupancyLow
	case pct <= 70:
		return OccupancyModerate
	case pct <= 90:
		return OccupancyHigh
	default:
		return OccupancyFull
	}
}

// OccupancyPercent computes current/max as a percentage; 0 when max is 0.
func OccupancyPercent(current, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(current) / float64(max) * 100
}

// Library is one library's occupancy snapshot.
type Library struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	CurrentOccupancy    int     `json:"current_occupancy"`
	MaxCapacity         int     `json:"max_capacity"`
	IsOpen              bool    `json:"is_open"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
	LastUpdated         string  `json:"last_updated,omitempty"`
}

// Lab is one lab's occupancy and availability snapshot.
type Lab struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Building            string  `json:"building"`
	RoomNumber          string  `json:"room_number"`
	CurrentOccupancy    int     `json:"current_occupancy"`
	MaxCapacity         int     `json:"max_capacity"`
	IsAvailable         bool    `json:"is_available"`
	EquipmentStatus     string  `json:"equipment_status,omitempty"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
}

// Level returns the display bucket for the library's occupancy.
func (l Library) Level() OccupancyLevel {
	if l.OccupancyPercentage > 0 {
		return LevelFor(l.OccupancyPercentage)
	}
	return LevelFor(OccupancyPercent(l.CurrentOccupancy, l.MaxCapacity))
}

// Level returns the display bucket for the lab's occupancy.
func (l Lab) Level() OccupancyLevel {
	if l.OccupancyPercentage > 0 {
		return LevelFor(l.OccupancyPercentage)
	}
	return LevelFor(OccupancyPercent(l.CurrentOccupancy, l.MaxCapacity))
}
