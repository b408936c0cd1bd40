package model

import "time"

// BackupFile is the export/import envelope written to backup downloads.
type BackupFile struct {
	Version    string        `json:"version"`
	ExportedAt time.Time     `json:"exportedAt"`
	Progress   *UserProgress `json:"progress"`
	Stats      SessionStats  `json:"stats"`
}

// BackupVersion is the current export format version.
const BackupVersion = "1.0"

// SessionStats is the derived summary shipped inside backups and served
// by the session stats endpoint.
type SessionStats struct {
	TotalSessions  int            `json:"totalSessions"`
	TotalDuration  int            `json:"totalDuration"` // seconds
	AverageScore   float64        `json:"averageScore"`  // over scored entries only
	DistinctTopics int            `json:"distinctTopics"`
	Recent         []SessionEntry `json:"recent"` // newest first, at most 10
}
