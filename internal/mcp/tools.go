package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/chfmt/internal/record"
	"github.com/gorewood/chfmt/internal/render"
)

// --- Extract tool ---

// ExtractInput is the input for the extract tool.
type ExtractInput struct {
	Text string `json:"text" jsonschema:"raw text to extract records from"`
}

// ExtractOutput is the output for the extract tool.
type ExtractOutput struct {
	Count   int             `json:"count"             jsonschema:"number of records extracted"`
	Records []record.Record `json:"records,omitempty" jsonschema:"the extracted records in source order"`
}

func handleExtract() mcp.ToolHandlerFor[ExtractInput, ExtractOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ExtractInput) (*mcp.CallToolResult, ExtractOutput, error) {
		records := record.Extract(input.Text)
		return nil, ExtractOutput{
			Count:   len(records),
			Records: records,
		}, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	Text        string `json:"text"                   jsonschema:"raw text to extract records from"`
	Width       int    `json:"width,omitempty"        jsonschema:"column width to wrap to (default 120)"`
	Trim        int    `json:"trim,omitempty"         jsonschema:"truncate display text to this many words"`
	NoTimestamp bool   `json:"no_timestamp,omitempty" jsonschema:"omit the timestamp prefix"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Count int    `json:"count" jsonschema:"number of records rendered"`
	Text  string `json:"text"  jsonschema:"formatted blocks separated by blank lines"`
}

func handleRender() mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		if input.Width < 0 {
			return nil, RenderOutput{}, errors.New("width must be positive")
		}
		if input.Trim < 0 {
			return nil, RenderOutput{}, errors.New("trim must be positive")
		}

		records := record.Extract(input.Text)
		if len(records) == 0 {
			return nil, RenderOutput{}, errors.New("no records found")
		}

		opts := render.Options{
			Width:         input.Width,
			TrimWords:     input.Trim,
			ShowTimestamp: !input.NoTimestamp,
		}
		if opts.Width == 0 {
			opts.Width = 120
		}

		blocks := make([]string, len(records))
		for i, rec := range records {
			blocks[i] = render.Format(rec, opts)
		}

		return nil, RenderOutput{
			Count: len(records),
			Text:  strings.Join(blocks, "\n\n"),
		}, nil
	}
}
