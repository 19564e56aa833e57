package project

import "time"

// Project is one imported voiceover project.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Timing is one persisted segment alignment result.
type Timing struct {
	Num           int       `json:"num"`
	Matched       bool      `json:"matched"`
	Confidence    float64   `json:"confidence"`
	StartCueIndex *int      `json:"startCueIndex"`
	EndCueIndex   *int      `json:"endCueIndex"`
	StartTime     float64   `json:"startTime"`
	EndTime       float64   `json:"endTime"`
	AlignedAt     time.Time `json:"alignedAt"`
}
