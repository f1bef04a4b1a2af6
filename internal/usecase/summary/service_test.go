package summary

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

type fakeTranscripts struct {
	fragments []*entities.TranscriptFragment
	err       error
}

func (f *fakeTranscripts) Create(ctx context.Context, fragment *entities.TranscriptFragment) error {
	f.fragments = append(f.fragments, fragment)
	return nil
}

func (f *fakeTranscripts) ListByBotID(ctx context.Context, botID string) ([]*entities.TranscriptFragment, error) {
	return f.fragments, f.err
}

func (f *fakeTranscripts) ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.TranscriptFragment, error) {
	return f.fragments, f.err
}

func (f *fakeTranscripts) CountByBotID(ctx context.Context, botID string) (int64, error) {
	return int64(len(f.fragments)), nil
}

type fakeSummaries struct {
	summaries   []*entities.MeetingSummary
	actionItems []*entities.ActionItem
	decisions   []*entities.MeetingDecision
	discussions []*entities.MeetingDiscussion
	jargon      []*entities.MeetingJargon
	themes      []*entities.MeetingTheme

	summaryErr   error
	actionErr    error
}

func (f *fakeSummaries) CreateSummary(ctx context.Context, s *entities.MeetingSummary) error {
	if f.summaryErr != nil {
		return f.summaryErr
	}
	f.summaries = append(f.summaries, s)
	return nil
}

func (f *fakeSummaries) CreateActionItem(ctx context.Context, item *entities.ActionItem) error {
	if f.actionErr != nil {
		return f.actionErr
	}
	f.actionItems = append(f.actionItems, item)
	return nil
}

func (f *fakeSummaries) CreateDecision(ctx context.Context, d *entities.MeetingDecision) error {
	f.decisions = append(f.decisions, d)
	return nil
}

func (f *fakeSummaries) CreateDiscussion(ctx context.Context, d *entities.MeetingDiscussion) error {
	f.discussions = append(f.discussions, d)
	return nil
}

func (f *fakeSummaries) CreateJargon(ctx context.Context, j *entities.MeetingJargon) error {
	f.jargon = append(f.jargon, j)
	return nil
}

func (f *fakeSummaries) CreateTheme(ctx context.Context, t *entities.MeetingTheme) error {
	f.themes = append(f.themes, t)
	return nil
}

func (f *fakeSummaries) FindLatestStructured(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	if len(f.summaries) == 0 {
		return nil, entities.ErrSummaryNotFound
	}
	return f.summaries[len(f.summaries)-1], nil
}

func (f *fakeSummaries) ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingSummary, error) {
	return f.summaries, nil
}

func (f *fakeSummaries) ListActionItems(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	return f.actionItems, nil
}

func (f *fakeSummaries) ListDecisions(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingDecision, error) {
	return f.decisions, nil
}

func (f *fakeSummaries) ListDiscussions(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingDiscussion, error) {
	return f.discussions, nil
}

type fakeMeetings struct {
	statuses []string
	meeting  *entities.Meeting
}

func (f *fakeMeetings) FindByID(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	if f.meeting == nil {
		return nil, entities.ErrMeetingNotFound
	}
	return f.meeting, nil
}

func (f *fakeMeetings) AttachBot(ctx context.Context, meetingID uuid.UUID, botID string) error {
	return nil
}

func (f *fakeMeetings) UpdateStatus(ctx context.Context, meetingID uuid.UUID, status string) error {
	f.statuses = append(f.statuses, status)
	return nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) SummaryReady(meetingID, meetingTitle string) error {
	f.calls++
	return f.err
}

func newPipeline(transcripts *fakeTranscripts, summaries *fakeSummaries, meetings *fakeMeetings, model TextGenerator, notifier Notifier) *Service {
	return NewService(transcripts, summaries, meetings, NewExtractor(model, nil), notifier, nil)
}

func transcriptFixture(t *testing.T) *fakeTranscripts {
	t.Helper()
	return &fakeTranscripts{fragments: []*entities.TranscriptFragment{
		utteranceFragment(t, "Alice", word("We", 0, true), word("decided", 1, true)),
		utteranceFragment(t, "Bob", word("Agreed", 2, true)),
	}}
}

func TestProcessMeetingSummary_HappyPath(t *testing.T) {
	summaryJSON, _ := json.Marshal(map[string]interface{}{
		"overview": "Team agreed on the plan",
		"action_items": []map[string]string{
			{"description": "Ship it", "owner": "Alice"},
		},
		"themes":        []string{"planning"},
		"context_group": "team-sync",
	})
	model := &fakeModel{response: string(summaryJSON)}
	summaries := &fakeSummaries{}
	meetings := &fakeMeetings{meeting: &entities.Meeting{Title: "Sprint Planning"}}
	notifier := &fakeNotifier{}

	result := newPipeline(transcriptFixture(t), summaries, meetings, model, notifier).
		ProcessMeetingSummary(context.Background(), uuid.New(), "bot-1", uuid.New())

	if result.Status != "success" {
		t.Fatalf("expected success, got %s (%s)", result.Status, result.Error)
	}
	if result.SummaryID == nil {
		t.Fatal("success result must carry a summary id")
	}
	if result.TranscriptLength == 0 {
		t.Fatal("success result must carry the transcript length")
	}
	if len(summaries.summaries) != 1 {
		t.Fatalf("expected one canonical row, got %d", len(summaries.summaries))
	}
	row := summaries.summaries[0]
	if row.SummaryType != entities.SummaryTypeStructured {
		t.Fatalf("unexpected summary type %s", row.SummaryType)
	}
	if row.ContextGroup != "team-sync" {
		t.Fatalf("context group not duplicated onto row: %s", row.ContextGroup)
	}
	var stored entities.StructuredSummary
	if err := json.Unmarshal([]byte(row.Content), &stored); err != nil {
		t.Fatalf("canonical content is not valid JSON: %v", err)
	}
	if stored.Overview != "Team agreed on the plan" {
		t.Fatalf("unexpected stored overview %q", stored.Overview)
	}
	if len(summaries.actionItems) != 1 {
		t.Fatalf("expected one action item row, got %d", len(summaries.actionItems))
	}
	if summaries.actionItems[0].Priority != "medium" || summaries.actionItems[0].Status != "pending" {
		t.Fatalf("action item defaults not applied: %+v", summaries.actionItems[0])
	}
	if len(summaries.themes) != 1 {
		t.Fatalf("expected exactly one themes row, got %d", len(summaries.themes))
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notification, got %d", notifier.calls)
	}
	last := meetings.statuses[len(meetings.statuses)-1]
	if last != entities.MeetingStatusCompleted {
		t.Fatalf("meeting should finish completed, got %s", last)
	}
}

func TestProcessMeetingSummary_ModelTimeout(t *testing.T) {
	model := &fakeModel{err: errors.New("context deadline exceeded")}
	summaries := &fakeSummaries{}
	meetings := &fakeMeetings{}

	result := newPipeline(transcriptFixture(t), summaries, meetings, model, nil).
		ProcessMeetingSummary(context.Background(), uuid.New(), "bot-1", uuid.New())

	if result.Status != "error" {
		t.Fatalf("expected error status, got %s", result.Status)
	}
	if result.Error == "" {
		t.Fatal("error result must carry a message")
	}
	if len(summaries.summaries) != 0 {
		t.Fatal("no summary row may be persisted on model failure")
	}
	last := meetings.statuses[len(meetings.statuses)-1]
	if last != entities.MeetingStatusError {
		t.Fatalf("meeting should be marked errored, got %s", last)
	}
}

func TestProcessMeetingSummary_NoFragments(t *testing.T) {
	model := &fakeModel{response: `{"overview":"unused"}`}
	summaries := &fakeSummaries{}

	result := newPipeline(&fakeTranscripts{}, summaries, &fakeMeetings{}, model, nil).
		ProcessMeetingSummary(context.Background(), uuid.New(), "bot-1", uuid.New())

	if result.Status != "error" {
		t.Fatalf("expected error status, got %s", result.Status)
	}
	if model.calls != 0 {
		t.Fatal("model must not be called without transcript data")
	}
}

func TestProcessMeetingSummary_EmptyActionItemsNonEmptyThemes(t *testing.T) {
	summaryJSON, _ := json.Marshal(map[string]interface{}{
		"overview":      "Nothing actionable",
		"action_items":  []interface{}{},
		"themes":        []string{"retrospective", "morale"},
		"context_group": "team-sync",
	})
	model := &fakeModel{response: string(summaryJSON)}
	summaries := &fakeSummaries{}

	result := newPipeline(transcriptFixture(t), summaries, &fakeMeetings{}, model, nil).
		ProcessMeetingSummary(context.Background(), uuid.New(), "bot-1", uuid.New())

	if result.Status != "success" {
		t.Fatalf("expected success, got %s (%s)", result.Status, result.Error)
	}
	if len(summaries.actionItems) != 0 {
		t.Fatalf("expected zero action item rows, got %d", len(summaries.actionItems))
	}
	if len(summaries.themes) != 1 {
		t.Fatalf("expected exactly one themes row, got %d", len(summaries.themes))
	}
	var themes []string
	if err := json.Unmarshal(summaries.themes[0].Themes, &themes); err != nil {
		t.Fatalf("themes row is not valid JSON: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("unexpected themes %v", themes)
	}
}

func TestProcessMeetingSummary_ComponentFailureDoesNotFailRun(t *testing.T) {
	summaryJSON, _ := json.Marshal(map[string]interface{}{
		"overview": "partial persistence",
		"action_items": []map[string]string{
			{"description": "doomed write"},
		},
	})
	model := &fakeModel{response: string(summaryJSON)}
	summaries := &fakeSummaries{actionErr: errors.New("constraint violation")}

	result := newPipeline(transcriptFixture(t), summaries, &fakeMeetings{}, model, nil).
		ProcessMeetingSummary(context.Background(), uuid.New(), "bot-1", uuid.New())

	if result.Status != "success" {
		t.Fatalf("component write failure must not fail the run, got %s", result.Status)
	}
	if len(summaries.summaries) != 1 {
		t.Fatal("canonical row must remain committed")
	}
}

func TestProcessMeetingSummary_NotifierFailureIsSwallowed(t *testing.T) {
	model := &fakeModel{response: `{"overview":"fine"}`}
	notifier := &fakeNotifier{err: errors.New("smtp down")}

	result := newPipeline(transcriptFixture(t), &fakeSummaries{}, &fakeMeetings{}, model, notifier).
		ProcessMeetingSummary(context.Background(), uuid.New(), "bot-1", uuid.New())

	if result.Status != "success" {
		t.Fatalf("notification failure must not fail the run, got %s", result.Status)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notification attempt, got %d", notifier.calls)
	}
}

func TestGetMeetingSummary_CoercesCorruptContent(t *testing.T) {
	summaries := &fakeSummaries{summaries: []*entities.MeetingSummary{{
		SummaryID:   uuid.New(),
		MeetingID:   uuid.New(),
		SummaryType: entities.SummaryTypeStructured,
		Content:     "not json at all",
	}}}

	detail, err := newPipeline(&fakeTranscripts{}, summaries, &fakeMeetings{}, &fakeModel{}, nil).
		GetMeetingSummary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetMeetingSummary failed: %v", err)
	}
	if detail.Content == nil {
		t.Fatal("content must coerce to an object")
	}
	if detail.Content.ActionItems == nil || detail.Content.Themes == nil {
		t.Fatal("coerced content must have non-nil lists")
	}
}

func TestListMeetingSummaries_ContentAlwaysObject(t *testing.T) {
	good, _ := json.Marshal(map[string]string{"overview": "fine", "context_group": "general"})
	summaries := &fakeSummaries{summaries: []*entities.MeetingSummary{
		{SummaryID: uuid.New(), SummaryType: entities.SummaryTypeStructured, Content: string(good)},
		{SummaryID: uuid.New(), SummaryType: entities.SummaryTypeStructured, Content: `"just a string"`},
	}}

	listings, err := newPipeline(&fakeTranscripts{}, summaries, &fakeMeetings{}, &fakeModel{}, nil).
		ListMeetingSummaries(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ListMeetingSummaries failed: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].Content.Overview != "fine" {
		t.Fatalf("valid content should round-trip, got %q", listings[0].Content.Overview)
	}
	if listings[1].Content == nil || listings[1].Content.Overview != "" {
		t.Fatal("corrupt content must coerce to the empty shape")
	}
}
