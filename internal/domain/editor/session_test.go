package editor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"landing-app/internal/domain/landing"
)

type fakeSaver struct {
	gate  chan struct{}
	err   error
	saves int32
}

func (f *fakeSaver) Save(ctx context.Context, page *landing.LandingPage) error {
	atomic.AddInt32(&f.saves, 1)
	if f.gate != nil {
		<-f.gate
	}
	return f.err
}

func (f *fakeSaver) Publish(ctx context.Context, page *landing.LandingPage) error {
	return f.Save(ctx, page)
}

func newDraft(t *testing.T) *landing.LandingPage {
	t.Helper()
	p, err := landing.NewLandingPage("Course", "course", nil, "professional")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func waitState(t *testing.T, s *Session, want SaveState) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.SaveStatus() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("save state never reached %v, stuck at %v", want, s.SaveStatus())
}

func TestSessionOpensOnContentStepWhenTemplateSet(t *testing.T) {
	s := NewSession(newDraft(t), &fakeSaver{})
	if s.Step() != StepEditContent {
		t.Fatalf("step = %v, want StepEditContent", s.Step())
	}
}

func TestSelectTemplateAutoAdvances(t *testing.T) {
	p := newDraft(t)
	p.Template = ""
	s := NewSession(p, &fakeSaver{})
	if s.Step() != StepChooseTemplate {
		t.Fatalf("step = %v, want StepChooseTemplate", s.Step())
	}

	if err := s.SelectTemplate("creative"); err != nil {
		t.Fatal(err)
	}
	if s.Step() != StepEditContent {
		t.Errorf("step = %v, want auto-advance to StepEditContent", s.Step())
	}

	// A later switch stays put.
	s.GoTo(StepPreviewAndPublish)
	if err := s.SelectTemplate("bold"); err != nil {
		t.Fatal(err)
	}
	if s.Step() != StepPreviewAndPublish {
		t.Errorf("step = %v, later template switch must not navigate", s.Step())
	}
	if s.Page().Settings.Colors.Primary != "#dc2626" {
		t.Error("theme not re-resolved on switch")
	}
}

func TestSelectTemplateUnknownKey(t *testing.T) {
	s := NewSession(newDraft(t), &fakeSaver{})
	if err := s.SelectTemplate("nope"); !errors.Is(err, landing.ErrUnknownTemplate) {
		t.Fatalf("got %v, want ErrUnknownTemplate", err)
	}
}

func TestNavigationClamps(t *testing.T) {
	p := newDraft(t)
	p.Template = ""
	s := NewSession(p, &fakeSaver{})

	s.Back()
	if s.Step() != StepChooseTemplate {
		t.Errorf("Back below first step: %v", s.Step())
	}
	for i := 0; i < 10; i++ {
		s.Next()
	}
	if s.Step() != StepPreviewAndPublish {
		t.Errorf("Next past last step: %v", s.Step())
	}
	// Forward and back are otherwise unrestricted.
	s.Back()
	if s.Step() != StepConfigureForm {
		t.Errorf("Back = %v, want StepConfigureForm", s.Step())
	}
}

func TestSaveSuccessRevertsToIdle(t *testing.T) {
	s := NewSession(newDraft(t), &fakeSaver{})
	s.SetResetAfter(10 * time.Millisecond)

	if !s.Save(context.Background()) {
		t.Fatal("save did not start")
	}
	waitState(t, s, StateSaved)
	waitState(t, s, StateIdle)
}

func TestSaveErrorSurfacesBeforeIdle(t *testing.T) {
	s := NewSession(newDraft(t), &fakeSaver{err: errors.New("boom")})
	s.SetResetAfter(50 * time.Millisecond)

	s.Save(context.Background())
	waitState(t, s, StateError)
	waitState(t, s, StateIdle)
}

func TestSaveWhileSavingIsNoop(t *testing.T) {
	saver := &fakeSaver{gate: make(chan struct{})}
	s := NewSession(newDraft(t), saver)
	s.SetResetAfter(10 * time.Millisecond)

	if !s.Save(context.Background()) {
		t.Fatal("first save did not start")
	}
	waitState(t, s, StateSaving)
	if s.Save(context.Background()) {
		t.Error("second save started while first was in flight")
	}

	close(saver.gate)
	waitState(t, s, StateSaved)
	if got := atomic.LoadInt32(&saver.saves); got != 1 {
		t.Errorf("saver called %d times, want 1", got)
	}
}

func TestPublishAppliesTransitionOnSuccess(t *testing.T) {
	s := NewSession(newDraft(t), &fakeSaver{})
	s.SetResetAfter(10 * time.Millisecond)

	s.PublishPage(context.Background())
	waitState(t, s, StateSaved)

	p := s.Page()
	if p.Status != landing.StatusPublished || p.PublishedAt == nil {
		t.Errorf("publish not applied: status=%q published_at=%v", p.Status, p.PublishedAt)
	}
}

func TestPublishFailureLeavesDraft(t *testing.T) {
	s := NewSession(newDraft(t), &fakeSaver{err: errors.New("boom")})
	s.SetResetAfter(10 * time.Millisecond)

	s.PublishPage(context.Background())
	waitState(t, s, StateError)

	if got := s.Page().Status; got != landing.StatusDraft {
		t.Errorf("status = %q, failed publish must not transition", got)
	}
}

func TestCloseDiscardsLateResolution(t *testing.T) {
	saver := &fakeSaver{gate: make(chan struct{})}
	s := NewSession(newDraft(t), saver)

	s.Save(context.Background())
	waitState(t, s, StateSaving)
	s.Close()
	close(saver.gate)

	// Give the goroutine a moment; the state must not move after Close.
	time.Sleep(20 * time.Millisecond)
	if got := s.SaveStatus(); got != StateSaving {
		t.Errorf("state moved to %v after Close", got)
	}

	if s.Save(context.Background()) {
		t.Error("save started on a closed session")
	}
}

// readingSaver keeps reading the page it was handed until the stop channel
// closes, the way a real saver walks the struct while serializing it, then
// reports the last hero title it saw.
type readingSaver struct {
	stop  chan struct{}
	title chan string
}

func (f *readingSaver) Save(ctx context.Context, page *landing.LandingPage) error {
	last := page.Content.Hero.Title
	for {
		select {
		case <-f.stop:
			f.title <- last
			return nil
		default:
			last = page.Content.Hero.Title
			for _, it := range page.Content.Features.Items {
				_ = it.Title
			}
		}
	}
}

func (f *readingSaver) Publish(ctx context.Context, page *landing.LandingPage) error {
	return f.Save(ctx, page)
}

func TestSaverReadsStableSnapshotDuringEdits(t *testing.T) {
	saver := &readingSaver{stop: make(chan struct{}), title: make(chan string, 1)}
	s := NewSession(newDraft(t), saver)
	s.SetResetAfter(10 * time.Millisecond)

	if err := s.UpdateField(landing.SectionHero, "title", "v0"); err != nil {
		t.Fatal(err)
	}
	if !s.Save(context.Background()) {
		t.Fatal("save did not start")
	}

	// Keep editing while the save is in flight.
	for i := 0; i < 200; i++ {
		if err := s.UpdateField(landing.SectionHero, "title", "edited"); err != nil {
			t.Fatal(err)
		}
		if err := s.AddFeature("Extra", "More detail"); err != nil {
			t.Fatal(err)
		}
	}
	close(saver.stop)
	waitState(t, s, StateSaved)

	if got := <-saver.title; got != "v0" {
		t.Errorf("saver observed title %q, want the value at save time", got)
	}
	if got := s.Page().Content.Hero.Title; got != "edited" {
		t.Errorf("session title = %q, mid-flight edits must stick locally", got)
	}
}

type statusSaver struct {
	status chan string
}

func (f *statusSaver) Save(ctx context.Context, page *landing.LandingPage) error {
	f.status <- page.Status
	return nil
}

func (f *statusSaver) Publish(ctx context.Context, page *landing.LandingPage) error {
	return f.Save(ctx, page)
}

func TestPublishHandsSaverPublishedPage(t *testing.T) {
	saver := &statusSaver{status: make(chan string, 1)}
	s := NewSession(newDraft(t), saver)
	s.SetResetAfter(10 * time.Millisecond)

	s.PublishPage(context.Background())
	waitState(t, s, StateSaved)

	if got := <-saver.status; got != landing.StatusPublished {
		t.Errorf("saver received status %q, want %q", got, landing.StatusPublished)
	}
}

func TestSessionEditsFlowThroughContract(t *testing.T) {
	s := NewSession(newDraft(t), &fakeSaver{})

	if err := s.UpdateField(landing.SectionHero, "title", "New Title"); err != nil {
		t.Fatal(err)
	}
	if got := s.Page().Content.Hero.Title; got != "New Title" {
		t.Errorf("hero title = %q", got)
	}

	if err := s.AddFeature("Extra", "More detail"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Page().Content.Features.Items); got != 5 {
		t.Errorf("feature count = %d, want 5", got)
	}

	s.DeleteFeature("unknown-id")
	if got := len(s.Page().Content.Features.Items); got != 5 {
		t.Errorf("unknown delete changed count to %d", got)
	}

	cfg := landing.DefaultFormConfig()
	cfg.SubmitButtonText = "Join"
	s.ConfigureForm(cfg)
	if got := s.Page().FormConfig.SubmitButtonText; got != "Join" {
		t.Errorf("submit text = %q", got)
	}
}

func TestSessionTestimonialEdits(t *testing.T) {
	s := NewSession(newDraft(t), &fakeSaver{})

	if err := s.AddTestimonial("Dana", "CTO", "Initech", "Changed how we ship.", 9); err != nil {
		t.Fatal(err)
	}
	items := s.Page().Content.Testimonials.Items
	if got := len(items); got != 3 {
		t.Fatalf("testimonial count = %d, want 3", got)
	}
	added := items[2]
	if added.Rating != 5 {
		t.Errorf("rating = %d, want clamp to 5", added.Rating)
	}

	if err := s.AddTestimonial("", "", "", "no name", 3); !errors.Is(err, landing.ErrEmptyFeatureField) {
		t.Fatalf("got %v, want ErrEmptyFeatureField", err)
	}

	s.DeleteTestimonial(added.ID)
	if got := len(s.Page().Content.Testimonials.Items); got != 2 {
		t.Errorf("count after delete = %d, want 2", got)
	}
	s.DeleteTestimonial("unknown-id")
	if got := len(s.Page().Content.Testimonials.Items); got != 2 {
		t.Errorf("unknown delete changed count to %d", got)
	}
}
