package tools

import (
	"fmt"
	"strings"

	"github.com/smhteam/huddle-mcp/internal/huddle"
)

// RenderList formats a listing page as readable text for the model.
func RenderList(list huddle.RecordingList) string {
	if len(list.Recordings) == 0 {
		return "No recordings found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d of %d recordings (skip %d, limit %d), newest first:\n",
		len(list.Recordings), list.Total, list.Skip, list.Limit)
	for _, rec := range list.Recordings {
		b.WriteString("\n")
		fmt.Fprintf(&b, "- id: %s\n", rec.ID)
		if rec.Date != "" {
			fmt.Fprintf(&b, "  date: %s\n", rec.Date)
		}
		if rec.DurationSeconds > 0 {
			fmt.Fprintf(&b, "  duration: %s\n", formatDuration(rec.DurationSeconds))
		}
		if len(rec.Participants) > 0 {
			fmt.Fprintf(&b, "  participants: %s\n", strings.Join(rec.Participants, ", "))
		}
		if rec.TLDR != "" {
			fmt.Fprintf(&b, "  tldr: %s\n", rec.TLDR)
		}
	}
	return b.String()
}

// RenderRecording formats a recording's metadata, derived summary, and
// diarized transcript as readable text.
func RenderRecording(rec huddle.Recording) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Recording %s\n", rec.ID)
	if rec.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n", rec.Date)
	}
	if rec.DurationSeconds > 0 {
		fmt.Fprintf(&b, "Duration: %s\n", formatDuration(rec.DurationSeconds))
	}
	if len(rec.Participants) > 0 {
		fmt.Fprintf(&b, "Participants: %s\n", strings.Join(rec.Participants, ", "))
	}

	if rec.Summary != nil {
		b.WriteString("\n## Summary\n")
		writeSection(&b, "What was done", rec.Summary.Done)
		writeSection(&b, "Problems", rec.Summary.Problems)
		writeSection(&b, "Plans", rec.Summary.Plans)
		writeSection(&b, "Agreements", rec.Summary.Agreements)
	}

	b.WriteString("\n## Transcript\n")
	if len(rec.Transcript) == 0 {
		b.WriteString("(no transcript available)\n")
		return b.String()
	}
	for _, entry := range rec.Transcript {
		speaker := entry.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		if entry.Timestamp != "" {
			fmt.Fprintf(&b, "[%s] %s: %s\n", entry.Timestamp, speaker, entry.Text)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", speaker, entry.Text)
		}
	}
	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// formatDuration renders seconds as 45s, 12m05s, or 1h02m.
func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
}
