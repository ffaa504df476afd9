package models

// PushOutcome is the result of a single push attempt.
type PushOutcome int

const (
	PushSynced PushOutcome = iota
	PushRetry
	PushTerminalFailure
)

func (o PushOutcome) String() string {
	switch o {
	case PushSynced:
		return "synced"
	case PushRetry:
		return "retry"
	case PushTerminalFailure:
		return "terminal_failure"
	default:
		return "unknown"
	}
}

// SaveResult is returned by the submission pipeline once the local write has
// succeeded. Message is the secondary, non-blocking status shown to the agent.
type SaveResult struct {
	RecordID string      `json:"record_id"`
	Outcome  PushOutcome `json:"outcome"`
	Message  string      `json:"message"`
}

// SyncReport summarises one pass of the retry worker over an entity type.
type SyncReport struct {
	EntityType string `json:"entity_type"`
	Succeeded  int    `json:"succeeded"`
	Failed     int    `json:"failed"`
	Orphaned   int    `json:"orphaned"`
}

// Add accumulates other into r.
func (r *SyncReport) Add(other SyncReport) {
	r.Succeeded += other.Succeeded
	r.Failed += other.Failed
	r.Orphaned += other.Orphaned
}
