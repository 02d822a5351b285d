package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// --- Extract handler tests ---

func TestHandleExtract_ValidArray(t *testing.T) {
	handler := handleExtract()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ExtractInput{
		Text: `[{"timestamp": 1000, "display": "a"}, {"timestamp": 2000, "display": "b"}]`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
	if len(out.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(out.Records))
	}
}

func TestHandleExtract_MalformedInput(t *testing.T) {
	handler := handleExtract()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ExtractInput{
		Text: `noise{"x":1}noise{"y":2}`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
}

func TestHandleExtract_NoRecords(t *testing.T) {
	handler := handleExtract()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ExtractInput{
		Text: "not json at all",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 0 {
		t.Errorf("Count = %d, want 0", out.Count)
	}
}

// --- Render handler tests ---

func TestHandleRender_Defaults(t *testing.T) {
	handler := handleRender()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, RenderInput{
		Text: `[{"timestamp": 1700000000000, "display": "hello"}, {"display": "world"}]`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
	if !strings.Contains(out.Text, "hello") || !strings.Contains(out.Text, "world") {
		t.Errorf("Text = %q, want both display strings", out.Text)
	}
	if !strings.Contains(out.Text, "\n\n") {
		t.Errorf("Text = %q, want blank line between blocks", out.Text)
	}
}

func TestHandleRender_NoTimestamp(t *testing.T) {
	handler := handleRender()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, RenderInput{
		Text:        `{"timestamp": 1700000000000, "display": "plain"}`,
		NoTimestamp: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "plain" {
		t.Errorf("Text = %q, want %q", out.Text, "plain")
	}
}

func TestHandleRender_Trim(t *testing.T) {
	handler := handleRender()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, RenderInput{
		Text:        `{"display": "one two three four five"}`,
		Trim:        3,
		NoTimestamp: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "one two three..." {
		t.Errorf("Text = %q, want %q", out.Text, "one two three...")
	}
}

func TestHandleRender_NoRecords(t *testing.T) {
	handler := handleRender()

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, RenderInput{
		Text: "nothing here",
	})
	if err == nil {
		t.Fatal("expected error for input with no records")
	}
	if !strings.Contains(err.Error(), "no records found") {
		t.Errorf("error = %v, want 'no records found'", err)
	}
}
