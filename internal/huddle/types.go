package huddle

// Summary is one entry in the recordings listing.
type Summary struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	DurationSeconds int      `json:"duration_seconds"`
	Participants    []string `json:"participants"`
	TLDR            string   `json:"tldr"`
}

// RecordingList is an ordered page of recording summaries. Order is the remote
// service's order (newest first); the client never re-sorts.
type RecordingList struct {
	Recordings []Summary `json:"recordings"`
	Total      int       `json:"total"`
	Skip       int       `json:"skip"`
	Limit      int       `json:"limit"`
}

// TranscriptEntry is one diarized speaker turn.
type TranscriptEntry struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// SummarySections holds the derived per-recording summary, when the service
// provides one.
type SummarySections struct {
	Done       []string `json:"done,omitempty"`
	Problems   []string `json:"problems,omitempty"`
	Plans      []string `json:"plans,omitempty"`
	Agreements []string `json:"agreements,omitempty"`
}

// Recording is the full detail of a single recording.
type Recording struct {
	ID              string            `json:"id"`
	Date            string            `json:"date"`
	DurationSeconds int               `json:"duration_seconds"`
	Participants    []string          `json:"participants"`
	Transcript      []TranscriptEntry `json:"transcript"`
	Summary         *SummarySections  `json:"summary,omitempty"`
}

// Listing defaults and bounds. Limit is clamped, never rejected.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListParams are the caller-supplied listing parameters before normalization.
type ListParams struct {
	Skip   int
	Limit  int
	Period string
}

// normalized clamps Skip to >= 0 and Limit into [1, MaxLimit], with zero Limit
// meaning "not provided" and taking the default.
func (p ListParams) normalized() ListParams {
	if p.Skip < 0 {
		p.Skip = 0
	}
	switch {
	case p.Limit == 0:
		p.Limit = DefaultLimit
	case p.Limit < 1:
		p.Limit = 1
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	return p
}
