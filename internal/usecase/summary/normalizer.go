package summary

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// fragmentShape classifies a raw fragment payload once, up front, instead of
// re-probing key presence throughout the pipeline.
type fragmentShape int

const (
	shapeUnknown fragmentShape = iota
	// shapeUtterance is a single utterance object carrying an embedded word list
	shapeUtterance
	// shapeUtteranceList is a flat JSON array of independent utterance-like entries
	shapeUtteranceList
)

// relativeTimestamp is the provider's nested timestamp object
type relativeTimestamp struct {
	Relative float64 `json:"relative"`
}

type participantPayload struct {
	Name string `json:"name"`
}

// wordPayload is one word inside an utterance's word list
type wordPayload struct {
	Text           string             `json:"text"`
	Speaker        string             `json:"speaker"`
	StartTimestamp *relativeTimestamp `json:"start_timestamp"`
	IsFinal        *bool              `json:"is_final"`
}

// utterancePayload is the utterance envelope. The same type also decodes the
// entries of a flat utterance list, where Text stands alone without Words.
type utterancePayload struct {
	Speaker        string              `json:"speaker"`
	Participant    *participantPayload `json:"participant"`
	Text           string              `json:"text"`
	Words          []wordPayload       `json:"words"`
	StartTimestamp *relativeTimestamp  `json:"start_timestamp"`
	IsFinal        *bool               `json:"is_final"`
}

// NormalizedWord is one chronological word derived from a fragment. Ephemeral;
// recomputed from stored fragments on every normalization run.
type NormalizedWord struct {
	Text      string
	Speaker   string
	Timestamp float64
	Final     bool
}

// SpeakerTurn is a maximal run of consecutive words from one speaker
type SpeakerTurn struct {
	Speaker string
	Words   []string
}

// NormalizeResult carries the rendered transcript plus observability counters
type NormalizeResult struct {
	Text      string
	WordCount int
	// Skipped counts fragments whose payload matched no recognized shape.
	// They degrade output quality silently, so the count is surfaced.
	Skipped int
}

// classifyFragment decides the payload shape exactly once
func classifyFragment(data []byte) (fragmentShape, *utterancePayload, []utterancePayload) {
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "[") {
		var entries []utterancePayload
		if err := json.Unmarshal(data, &entries); err != nil {
			return shapeUnknown, nil, nil
		}
		return shapeUtteranceList, nil, entries
	}

	var u utterancePayload
	if err := json.Unmarshal(data, &u); err != nil {
		return shapeUnknown, nil, nil
	}
	if len(u.Words) == 0 {
		return shapeUnknown, nil, nil
	}
	return shapeUtterance, &u, nil
}

// resolveSpeaker applies the speaker precedence: explicit speaker field,
// then participant name, then "Unknown"
func resolveSpeaker(explicit string, participant *participantPayload) string {
	if explicit != "" {
		return explicit
	}
	if participant != nil && participant.Name != "" {
		return participant.Name
	}
	return "Unknown"
}

func explodeUtterance(u *utterancePayload) []NormalizedWord {
	speaker := resolveSpeaker(u.Speaker, u.Participant)
	words := make([]NormalizedWord, 0, len(u.Words))
	for _, w := range u.Words {
		nw := NormalizedWord{
			Text:    w.Text,
			Speaker: speaker,
		}
		if w.Speaker != "" {
			nw.Speaker = w.Speaker
		}
		switch {
		case w.StartTimestamp != nil:
			nw.Timestamp = w.StartTimestamp.Relative
		case u.StartTimestamp != nil:
			nw.Timestamp = u.StartTimestamp.Relative
		}
		switch {
		case w.IsFinal != nil:
			nw.Final = *w.IsFinal
		case u.IsFinal != nil:
			nw.Final = *u.IsFinal
		}
		words = append(words, nw)
	}
	return words
}

func flattenEntry(u *utterancePayload) (NormalizedWord, bool) {
	if u.Text == "" {
		return NormalizedWord{}, false
	}
	nw := NormalizedWord{
		Text:    u.Text,
		Speaker: resolveSpeaker(u.Speaker, u.Participant),
	}
	if u.StartTimestamp != nil {
		nw.Timestamp = u.StartTimestamp.Relative
	}
	if u.IsFinal != nil {
		nw.Final = *u.IsFinal
	}
	return nw, true
}

// Normalize reconstructs the chronological, speaker-grouped transcript from
// the stored fragments of one session. Empty input yields an empty string,
// not an error.
func Normalize(fragments []*entities.TranscriptFragment) NormalizeResult {
	var all []NormalizedWord
	skipped := 0

	for _, fragment := range fragments {
		shape, utterance, entries := classifyFragment(fragment.Data)
		switch shape {
		case shapeUtterance:
			all = append(all, explodeUtterance(utterance)...)
		case shapeUtteranceList:
			matched := false
			for i := range entries {
				if nw, ok := flattenEntry(&entries[i]); ok {
					all = append(all, nw)
					matched = true
				}
			}
			if !matched {
				skipped++
			}
		default:
			skipped++
		}
	}

	if len(all) == 0 {
		return NormalizeResult{Skipped: skipped}
	}

	// Stable sort preserves arrival order among equal timestamps
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp < all[j].Timestamp
	})

	// Finality filter is total: one final word anywhere means provisional
	// words are dropped everywhere
	final := make([]NormalizedWord, 0, len(all))
	for _, w := range all {
		if w.Final {
			final = append(final, w)
		}
	}
	words := all
	if len(final) > 0 {
		words = final
	}

	var turns []SpeakerTurn
	for _, w := range words {
		if len(turns) == 0 || turns[len(turns)-1].Speaker != w.Speaker {
			turns = append(turns, SpeakerTurn{Speaker: w.Speaker, Words: []string{w.Text}})
			continue
		}
		last := &turns[len(turns)-1]
		last.Words = append(last.Words, w.Text)
	}

	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Speaker, strings.Join(turn.Words, " ")))
	}

	return NormalizeResult{
		Text:      strings.Join(lines, "\n"),
		WordCount: len(words),
		Skipped:   skipped,
	}
}
