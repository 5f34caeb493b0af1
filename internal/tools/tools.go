// Package tools exposes the recording client as MCP tools.
package tools

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/smhteam/huddle-mcp/internal/huddle"
)

// Tool names as seen by the MCP host.
const (
	toolListRecordings = "list_recordings"
	toolGetRecording   = "get_recording"
)

// The descriptions carry usage hints for the calling model, not just humans:
// how to page, when to trust tldr, and the expected summary shape.
const (
	listDescription = `Get a list of huddle (call) recordings.

Hints:
- Recordings are sorted by date in descending order, so to get the most recent recording just set limit to 1.
- Use the "tldr" field to quickly understand the context of a recording, but never rely on it when the user asks for a summary. For a real summary refer to the diarized transcript via the get_recording tool.`

	getDescription = `Get a recording by its ID, including the full diarized transcript.

Hints:
- Try to use this tool not more than 7 times throughout one conversation.
- When creating a summary, refer to the diarized transcript.
- Summary format, one block per participant: What was done / Problems / Plans / Agreements (omit Agreements when there were none). Answer in the user's language.`
)

// RecordingAPI is the client surface the tools need. *huddle.Client satisfies it.
type RecordingAPI interface {
	ListRecordings(ctx context.Context, params huddle.ListParams) (huddle.RecordingList, error)
	GetRecording(ctx context.Context, recordingID string) (huddle.Recording, error)
}

type provider struct {
	api    RecordingAPI
	logger *slog.Logger
}

type listArgs struct {
	Skip   int    `json:"skip,omitempty" jsonschema:"number of recordings to skip (default 0)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"number of recordings to return (default 20, max 100)"`
	Period string `json:"period,omitempty" jsonschema:"optional server-side time filter such as today, week, or month"`
}

type getArgs struct {
	RecordingID string `json:"recording_id" jsonschema:"id of the recording to fetch"`
}

// Register adds the recording tools to the MCP server.
func Register(server *mcp.Server, api RecordingAPI, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	p := &provider{
		api:    api,
		logger: log.With(slog.String("component", "tools")),
	}
	mcp.AddTool(server, &mcp.Tool{Name: toolListRecordings, Description: listDescription}, p.listRecordings)
	mcp.AddTool(server, &mcp.Tool{Name: toolGetRecording, Description: getDescription}, p.getRecording)
}

func (p *provider) listRecordings(ctx context.Context, req *mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, any, error) {
	list, err := p.api.ListRecordings(ctx, huddle.ListParams{
		Skip:   args.Skip,
		Limit:  args.Limit,
		Period: args.Period,
	})
	if err != nil {
		p.logger.Warn("list_recordings failed", slog.Any("error", err))
		return errorResult(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: RenderList(list)}},
		StructuredContent: list,
	}, nil, nil
}

func (p *provider) getRecording(ctx context.Context, req *mcp.CallToolRequest, args getArgs) (*mcp.CallToolResult, any, error) {
	rec, err := p.api.GetRecording(ctx, args.RecordingID)
	if err != nil {
		p.logger.Warn("get_recording failed", slog.Any("error", err))
		return errorResult(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: RenderRecording(rec)}},
		StructuredContent: rec,
	}, nil, nil
}

// errorResult converts a client error into a tool error result. Tool failures
// are reported to the model in-band; they never fail the protocol stream.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
