package summary

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"gorm.io/datatypes"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

func fragment(t *testing.T, payload interface{}) *entities.TranscriptFragment {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return &entities.TranscriptFragment{BotID: "bot-1", Data: datatypes.JSON(data)}
}

func utteranceFragment(t *testing.T, speaker string, words ...map[string]interface{}) *entities.TranscriptFragment {
	t.Helper()
	return fragment(t, map[string]interface{}{
		"speaker": speaker,
		"words":   words,
	})
}

func word(text string, start float64, final bool) map[string]interface{} {
	return map[string]interface{}{
		"text":            text,
		"start_timestamp": map[string]float64{"relative": start},
		"is_final":        final,
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	res := Normalize(nil)
	if res.Text != "" {
		t.Fatalf("expected empty output, got %q", res.Text)
	}
	if res.Skipped != 0 {
		t.Fatalf("expected no skipped fragments, got %d", res.Skipped)
	}
}

func TestNormalize_TwoSpeakers(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("Hi", 0.0, true)),
		utteranceFragment(t, "Bob", word("Hello", 1.0, true)),
	}
	res := Normalize(fragments)
	if res.Text != "Alice: Hi\nBob: Hello" {
		t.Fatalf("unexpected output %q", res.Text)
	}
}

func TestNormalize_GroupsAcrossFragments(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("Good", 0.0, true)),
		utteranceFragment(t, "Alice", word("morning", 0.5, true)),
	}
	res := Normalize(fragments)
	if res.Text != "Alice: Good morning" {
		t.Fatalf("expected single grouped turn, got %q", res.Text)
	}
}

func TestNormalize_LineShape(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("one", 0, true), word("two", 1, true)),
		utteranceFragment(t, "Bob", word("three", 2, true)),
		utteranceFragment(t, "Alice", word("four", 3, true)),
	}
	res := Normalize(fragments)
	lineRe := regexp.MustCompile(`^[^:]+: .+$`)
	for _, line := range strings.Split(res.Text, "\n") {
		if !lineRe.MatchString(line) {
			t.Fatalf("line %q does not match speaker: text shape", line)
		}
	}
}

func TestNormalize_PermutationInvariant(t *testing.T) {
	base := []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("alpha", 0.0, true)),
		utteranceFragment(t, "Bob", word("beta", 1.0, true)),
		utteranceFragment(t, "Alice", word("gamma", 2.0, true)),
		utteranceFragment(t, "Carol", word("delta", 3.0, true)),
	}
	want := Normalize(base).Text

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*entities.TranscriptFragment, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := Normalize(shuffled).Text; got != want {
			t.Fatalf("permutation %d changed output:\nwant %q\ngot  %q", i, want, got)
		}
	}
}

func TestNormalize_FinalityFilterIsTotal(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("provisional", 0.0, false)),
		utteranceFragment(t, "Bob", word("final", 1.0, true)),
	}
	res := Normalize(fragments)
	if strings.Contains(res.Text, "provisional") {
		t.Fatalf("provisional word survived finality filter: %q", res.Text)
	}
	if res.Text != "Bob: final" {
		t.Fatalf("unexpected output %q", res.Text)
	}
}

func TestNormalize_KeepsAllWhenNothingFinal(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("hello", 0.0, false)),
		utteranceFragment(t, "Alice", word("there", 1.0, false)),
	}
	res := Normalize(fragments)
	if res.Text != "Alice: hello there" {
		t.Fatalf("unexpected output %q", res.Text)
	}
}

func TestNormalize_SpeakerResolutionOrder(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		fragment(t, map[string]interface{}{
			"participant": map[string]string{"name": "Alice Nguyen"},
			"words":       []map[string]interface{}{word("hi", 0, true)},
		}),
		fragment(t, map[string]interface{}{
			"words": []map[string]interface{}{word("anyone", 1, true)},
		}),
	}
	res := Normalize(fragments)
	want := "Alice Nguyen: hi\nUnknown: anyone"
	if res.Text != want {
		t.Fatalf("unexpected output %q, want %q", res.Text, want)
	}
}

func TestNormalize_FragmentLevelTimestampFallback(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		fragment(t, map[string]interface{}{
			"speaker":         "Bob",
			"start_timestamp": map[string]float64{"relative": 5.0},
			"words": []map[string]interface{}{
				{"text": "later", "is_final": true},
			},
		}),
		utteranceFragment(t, "Alice", word("first", 1.0, true)),
	}
	res := Normalize(fragments)
	if res.Text != "Alice: first\nBob: later" {
		t.Fatalf("fragment-level timestamp not applied: %q", res.Text)
	}
}

func TestNormalize_FlatUtteranceList(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		fragment(t, []map[string]interface{}{
			{"speaker": "Alice", "text": "one", "start_timestamp": map[string]float64{"relative": 0}, "is_final": true},
			{"speaker": "Bob", "text": "two", "start_timestamp": map[string]float64{"relative": 1}, "is_final": true},
		}),
	}
	res := Normalize(fragments)
	if res.Text != "Alice: one\nBob: two" {
		t.Fatalf("unexpected output %q", res.Text)
	}
}

func TestNormalize_UnknownShapesSkippedAndCounted(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("kept", 0, true)),
		fragment(t, map[string]string{"unexpected": "shape"}),
		{BotID: "bot-1", Data: datatypes.JSON([]byte("not json"))},
	}
	res := Normalize(fragments)
	if res.Text != "Alice: kept" {
		t.Fatalf("unexpected output %q", res.Text)
	}
	if res.Skipped != 2 {
		t.Fatalf("expected 2 skipped fragments, got %d", res.Skipped)
	}
}

func TestNormalize_StableTieBreak(t *testing.T) {
	fragments := []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("first", 1.0, true)),
		utteranceFragment(t, "Alice", word("second", 1.0, true)),
	}
	res := Normalize(fragments)
	if res.Text != "Alice: first second" {
		t.Fatalf("equal timestamps should preserve arrival order, got %q", res.Text)
	}
}

func TestNormalize_ManySpeakersOrdering(t *testing.T) {
	var fragments []*entities.TranscriptFragment
	for i := 9; i >= 0; i-- {
		fragments = append(fragments, utteranceFragment(t,
			fmt.Sprintf("Speaker%d", i),
			word(fmt.Sprintf("w%d", i), float64(i), true)))
	}
	res := Normalize(fragments)
	lines := strings.Split(res.Text, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 turns, got %d", len(lines))
	}
	for i, line := range lines {
		want := fmt.Sprintf("Speaker%d: w%d", i, i)
		if line != want {
			t.Fatalf("line %d = %q, want %q", i, line, want)
		}
	}
}
