package models

import "time"

// SetEntry is one logged set: what was actually performed.
type SetEntry struct {
	Reps      string `json:"reps"`
	Weight    string `json:"weight"`
	Completed bool   `json:"completed"`
}

type RecordedExercise struct {
	Name   string     `json:"name"`
	Series []SetEntry `json:"series"`
}

// HistoryRecord is the immutable snapshot of one finalized session. The
// history log keeps records most-recent-first and never mutates them.
type HistoryRecord struct {
	ID              string             `json:"id"`
	TemplateName    string             `json:"template_name"`
	RecordedAt      time.Time          `json:"recorded_at"`
	DurationSeconds int                `json:"duration_seconds"`
	Exercises       []RecordedExercise `json:"exercises"`
	Genres          []string           `json:"genres,omitempty"`
}
