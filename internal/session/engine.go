package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotinasync/rotina/internal/models"
)

// Field names the two editable leaves of a logged set.
type Field string

const (
	FieldReps   Field = "reps"
	FieldWeight Field = "weight"
)

var (
	ErrFinalized        = errors.New("session already finalized")
	ErrFinalizeInFlight = errors.New("finalize already in progress")
)

// HistoryLog is the persistence surface finalize commits to: read the whole
// log, write the whole log back.
type HistoryLog interface {
	Load() ([]models.HistoryRecord, error)
	SaveAll([]models.HistoryRecord) error
}

// GenreSource correlates a time window with music genres. It never fails:
// anything that goes wrong behind it surfaces as an empty result.
type GenreSource interface {
	GenresForWindow(ctx context.Context, start, end time.Time) []string
}

// Engine runs one live execution of a template: the elapsed-seconds ticker,
// the per-set performance log and the single finalize that turns it all into
// a HistoryRecord. One engine, one session; an abandoned engine just gets
// Stop() and is never persisted.
type Engine struct {
	mu         sync.Mutex
	template   models.Template
	startedAt  time.Time
	elapsed    int
	log        map[int]map[int]models.SetEntry
	finalizing bool
	finalized  bool

	history  HistoryLog
	genres   GenreSource
	interval time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

type Option func(*Engine)

// WithTickInterval overrides the 1s tick. Tests use short intervals.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

// New seeds the set log from the template's targets and starts the ticker.
func New(template models.Template, history HistoryLog, genres GenreSource, opts ...Option) *Engine {
	e := &Engine{
		template:  template,
		startedAt: time.Now(),
		log:       make(map[int]map[int]models.SetEntry),
		history:   history,
		genres:    genres,
		interval:  time.Second,
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	for exIdx, ex := range template.Exercises {
		e.log[exIdx] = make(map[int]models.SetEntry)
		for setIdx, target := range ex.Sets {
			e.log[exIdx][setIdx] = models.SetEntry{
				Reps:   target.Reps,
				Weight: target.Weight,
			}
		}
	}

	go e.run()
	return e
}

func (e *Engine) run() {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			e.mu.Lock()
			select {
			case <-e.stop:
				// Stopped between the tick firing and the lock.
				e.mu.Unlock()
				return
			default:
			}
			e.elapsed++
			e.mu.Unlock()
		}
	}
}

// Stop cancels the ticker. Safe to call any number of times; once it returns,
// Elapsed never moves again.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stop) })
}

func (e *Engine) Template() models.Template { return e.template }

func (e *Engine) StartedAt() time.Time { return e.startedAt }

// Elapsed returns the whole seconds counted so far.
func (e *Engine) Elapsed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsed
}

// Entry returns a copy of one logged set.
func (e *Engine) Entry(exIdx, setIdx int) (models.SetEntry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.log[exIdx][setIdx]
	return entry, ok
}

// Finalized reports whether the session has been committed to history.
func (e *Engine) Finalized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finalized
}

// UpdateSet replaces a single reps or weight value, leaving every other
// entry untouched. Values are stored as free text, like the targets.
func (e *Engine) UpdateSet(exIdx, setIdx int, field Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.finalized {
		return ErrFinalized
	}

	entry, ok := e.log[exIdx][setIdx]
	if !ok {
		return fmt.Errorf("no set %d for exercise %d", setIdx+1, exIdx+1)
	}

	switch field {
	case FieldReps:
		entry.Reps = value
	case FieldWeight:
		entry.Weight = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	e.log[exIdx][setIdx] = entry
	return nil
}

// ToggleSet flips the completed flag of a single set.
func (e *Engine) ToggleSet(exIdx, setIdx int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.finalized {
		return ErrFinalized
	}

	entry, ok := e.log[exIdx][setIdx]
	if !ok {
		return fmt.Errorf("no set %d for exercise %d", setIdx+1, exIdx+1)
	}
	entry.Completed = !entry.Completed
	e.log[exIdx][setIdx] = entry
	return nil
}

// Finalize closes the session: stops the ticker, correlates the window with
// the genre source (best effort) and commits a snapshot to the history log.
// A persistence failure aborts the whole thing and the session stays live so
// the user can retry; only a successful write is terminal. The caller is
// responsible for confirming with the user before calling this.
func (e *Engine) Finalize(ctx context.Context) (*models.HistoryRecord, error) {
	e.mu.Lock()
	if e.finalized {
		e.mu.Unlock()
		return nil, ErrFinalized
	}
	if e.finalizing {
		e.mu.Unlock()
		return nil, ErrFinalizeInFlight
	}
	e.finalizing = true
	endTime := time.Now()
	duration := e.elapsed
	e.mu.Unlock()

	e.Stop()

	// Best effort: an empty result never blocks the session from being saved.
	genres := e.genres.GenresForWindow(ctx, e.startedAt, endTime)

	records, err := e.history.Load()
	if err != nil {
		e.abortFinalize()
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	record := e.snapshot(endTime, duration, genres)
	records = append([]models.HistoryRecord{record}, records...)

	if err := e.history.SaveAll(records); err != nil {
		e.abortFinalize()
		return nil, fmt.Errorf("failed to save history: %w", err)
	}

	e.mu.Lock()
	e.finalized = true
	e.finalizing = false
	e.mu.Unlock()
	return &record, nil
}

func (e *Engine) abortFinalize() {
	e.mu.Lock()
	e.finalizing = false
	e.mu.Unlock()
}

// snapshot deep-copies the log following the template's shape, so the record
// shares no mutable structure with the live session.
func (e *Engine) snapshot(end time.Time, duration int, genres []string) models.HistoryRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	exercises := make([]models.RecordedExercise, 0, len(e.template.Exercises))
	for exIdx, ex := range e.template.Exercises {
		series := make([]models.SetEntry, 0, len(ex.Sets))
		for setIdx := range ex.Sets {
			series = append(series, e.log[exIdx][setIdx])
		}
		exercises = append(exercises, models.RecordedExercise{Name: ex.Name, Series: series})
	}

	return models.HistoryRecord{
		ID:              uuid.New().String(),
		TemplateName:    e.template.Name,
		RecordedAt:      end,
		DurationSeconds: duration,
		Exercises:       exercises,
		Genres:          genres,
	}
}
