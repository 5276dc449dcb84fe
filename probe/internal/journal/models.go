package journal

import "time"

// Probe is one guarded startup attempt and what it negotiated.
type Probe struct {
	ID             uint   `gorm:"primaryKey"`
	RunID          string `gorm:"uniqueIndex;size:36"`
	RequestedMajor uint8
	RequestedMinor uint8
	OK             bool
	Kind           string `gorm:"size:32"`
	Status         int32
	Negotiated     uint16
	HighVersion    uint16
	Description    string `gorm:"size:257"`
	SystemStatus   string `gorm:"size:129"`
	CreatedAt      time.Time
}
