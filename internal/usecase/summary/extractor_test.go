package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeModel records calls and plays back a canned response
type fakeModel struct {
	calls    int
	response string
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestExtract_EmptyInputSkipsModel(t *testing.T) {
	model := &fakeModel{response: `{"overview":"should not be used"}`}
	extractor := NewExtractor(model, nil)

	for _, input := range []string{"", "   ", "\n\t "} {
		out, err := extractor.Extract(context.Background(), input)
		if err != nil {
			t.Fatalf("Extract(%q) failed: %v", input, err)
		}
		if out.Overview != "Error processing transcript" {
			t.Fatalf("expected fallback overview, got %q", out.Overview)
		}
		if out.ContextGroup != "general" {
			t.Fatalf("expected fallback context group, got %q", out.ContextGroup)
		}
	}
	if model.calls != 0 {
		t.Fatalf("model should not be called for empty input, got %d calls", model.calls)
	}
}

func TestExtract_ParsesFencedJSON(t *testing.T) {
	model := &fakeModel{response: "```json\n{\"overview\":\"x\",\"themes\":[\"t1\"],\"context_group\":\"team-sync\"}\n```"}
	extractor := NewExtractor(model, nil)

	out, err := extractor.Extract(context.Background(), "Alice: Hi")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if out.Overview != "x" {
		t.Fatalf("unexpected overview %q", out.Overview)
	}
	if len(out.Themes) != 1 || out.Themes[0] != "t1" {
		t.Fatalf("unexpected themes %v", out.Themes)
	}
	if out.ContextGroup != "team-sync" {
		t.Fatalf("unexpected context group %q", out.ContextGroup)
	}
	if model.calls != 1 {
		t.Fatalf("expected one model call, got %d", model.calls)
	}
}

func TestExtract_NilListsNormalized(t *testing.T) {
	model := &fakeModel{response: `{"overview":"short meeting"}`}
	extractor := NewExtractor(model, nil)

	out, err := extractor.Extract(context.Background(), "Alice: Hi")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if out.ActionItems == nil || out.KeyDecisions == nil || out.KeyTakeaways == nil ||
		out.DiscussionPoints == nil || out.JargonClarifications == nil || out.Themes == nil {
		t.Fatal("list fields must never be nil after extraction")
	}
	if out.ContextGroup != "general" {
		t.Fatalf("missing context group should default to general, got %q", out.ContextGroup)
	}
}

func TestExtract_MalformedJSONFallsBack(t *testing.T) {
	for _, response := range []string{
		"I could not produce JSON today.",
		`{"overview": "trunc`,
		`["not", "an", "object"]`,
	} {
		model := &fakeModel{response: response}
		out, err := NewExtractor(model, nil).Extract(context.Background(), "Alice: Hi")
		if err != nil {
			t.Fatalf("parse failure must not propagate, got %v for %q", err, response)
		}
		if out.Overview != "Error processing transcript" {
			t.Fatalf("expected fallback for %q, got overview %q", response, out.Overview)
		}
	}
}

func TestExtract_TransportErrorPropagates(t *testing.T) {
	model := &fakeModel{err: errors.New("connection timed out")}
	out, err := NewExtractor(model, nil).Extract(context.Background(), "Alice: Hi")
	if err == nil {
		t.Fatal("transport failure must propagate")
	}
	if out != nil {
		t.Fatal("no summary should be returned on transport failure")
	}
	if !strings.Contains(err.Error(), "connection timed out") {
		t.Fatalf("error should wrap the transport cause, got %v", err)
	}
}

func TestExtract_PromptContainsTranscript(t *testing.T) {
	var captured string
	model := &capturingModel{response: `{"overview":"ok"}`, captured: &captured}
	_, err := NewExtractor(model, nil).Extract(context.Background(), "Alice: the roadmap slipped")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.Contains(captured, "Alice: the roadmap slipped") {
		t.Fatal("prompt must embed the transcript text")
	}
	if !strings.Contains(captured, `"context_group"`) {
		t.Fatal("prompt must spell out the expected JSON schema")
	}
}

type capturingModel struct {
	response string
	captured *string
}

func (c *capturingModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	*c.captured = prompt
	return c.response, nil
}

func TestStripJSONFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		`{"a":1}`:                 `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range cases {
		if got := stripJSONFence(in); got != want {
			t.Fatalf("stripJSONFence(%q) = %q, want %q", in, got, want)
		}
	}
}
