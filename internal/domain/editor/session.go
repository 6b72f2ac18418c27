// Package editor holds the wizard that walks a landing page from template
// selection to publish. One Session owns one LandingPage for the duration of
// an editing session; every mutation goes through the session so renderers
// and handlers only ever read.
package editor

import (
	"context"
	"sync"
	"time"

	"landing-app/internal/domain/landing"
)

// Step is one screen of the editing wizard.
type Step int

const (
	StepChooseTemplate Step = iota
	StepEditContent
	StepConfigureForm
	StepPreviewAndPublish
)

// SaveState is the observable state of the most recent save or publish.
type SaveState int

const (
	StateIdle SaveState = iota
	StateSaving
	StateSaved
	StateError
)

// Saver persists the page. The transport behind it is not the session's
// concern.
type Saver interface {
	Save(ctx context.Context, page *landing.LandingPage) error
	Publish(ctx context.Context, page *landing.LandingPage) error
}

// DefaultResetAfter is how long a terminal save state stays visible before
// the session reverts to idle.
const DefaultResetAfter = 3 * time.Second

// Session serializes all edits to one landing page. Navigation between steps
// is unrestricted in both directions; no step validates before yielding.
type Session struct {
	mu sync.Mutex

	page  *landing.LandingPage
	step  Step
	saver Saver

	saveState  SaveState
	resetAfter time.Duration
	resetTimer *time.Timer
	closed     bool
}

// NewSession starts an editing session over page. A page that already has a
// template selected opens on the content step.
func NewSession(page *landing.LandingPage, saver Saver) *Session {
	s := &Session{
		page:       page,
		saver:      saver,
		resetAfter: DefaultResetAfter,
	}
	if page.Template != "" {
		s.step = StepEditContent
	}
	return s
}

// SetResetAfter overrides how long saved/error states linger before
// reverting to idle.
func (s *Session) SetResetAfter(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetAfter = d
}

// Page returns the session's page.
func (s *Session) Page() *landing.LandingPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Step returns the current wizard step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Next advances one step, clamped at the preview step.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step < StepPreviewAndPublish {
		s.step++
	}
}

// Back retreats one step, clamped at the template step.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > StepChooseTemplate {
		s.step--
	}
}

// GoTo jumps to an arbitrary step. Out-of-range values are ignored.
func (s *Session) GoTo(step Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if step >= StepChooseTemplate && step <= StepPreviewAndPublish {
		s.step = step
	}
}

// SelectTemplate applies the template to the page. Selecting while still on
// the template step auto-advances to content editing; a later switch stays
// on the current step and only re-resolves the theme values.
func (s *Session) SelectTemplate(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.page.ApplyTemplate(key); err != nil {
		return err
	}
	if s.step == StepChooseTemplate {
		s.step = StepEditContent
	}
	return nil
}

// UpdateField routes a single-field content edit through the immutable
// update contract.
func (s *Session) UpdateField(section, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := landing.UpdateSectionField(s.page.Content, section, field, value)
	if err != nil {
		return err
	}
	s.page.Content = c
	return nil
}

// AddFeature appends a feature item per the add policy.
func (s *Session) AddFeature(title, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := landing.AddFeature(s.page.Content, title, description)
	if err != nil {
		return err
	}
	s.page.Content = c
	return nil
}

// DeleteFeature removes a feature item; unknown ids are a no-op.
func (s *Session) DeleteFeature(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.Content = landing.DeleteFeature(s.page.Content, id)
}

// AddTestimonial appends a testimonial per the add policy.
func (s *Session) AddTestimonial(name, role, company, content string, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := landing.AddTestimonial(s.page.Content, name, role, company, content, rating)
	if err != nil {
		return err
	}
	s.page.Content = c
	return nil
}

// DeleteTestimonial removes a testimonial; unknown ids are a no-op.
func (s *Session) DeleteTestimonial(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.Content = landing.DeleteTestimonial(s.page.Content, id)
}

// ConfigureForm replaces the lead-capture form definition.
func (s *Session) ConfigureForm(cfg landing.FormConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.FormConfig = cfg
}

// SaveStatus returns the observable save state.
func (s *Session) SaveStatus() SaveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveState
}

// Save persists the page asynchronously. It reports whether a save was
// started: a save requested while another is in flight is a no-op and
// returns false. The saver receives a snapshot taken when the save starts,
// so edits made mid-flight land in the next save, not this one. The state
// moves idle -> saving -> saved|error and reverts to idle after the reset
// interval.
func (s *Session) Save(ctx context.Context) bool {
	return s.run(ctx, s.saver.Save, nil)
}

// PublishPage persists the page as published and, on success, applies the
// same transition locally so the session view matches what was stored.
func (s *Session) PublishPage(ctx context.Context) bool {
	now := time.Now()
	return s.run(ctx, func(ctx context.Context, page *landing.LandingPage) error {
		page.Publish(now)
		return s.saver.Publish(ctx, page)
	}, func() {
		s.page.Publish(now)
	})
}

func (s *Session) run(ctx context.Context, op func(context.Context, *landing.LandingPage) error, onSuccess func()) bool {
	s.mu.Lock()
	if s.closed || s.saveState == StateSaving {
		s.mu.Unlock()
		return false
	}
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.saveState = StateSaving
	// Mutations replace section pointers rather than writing through them,
	// so a shallow copy taken under the lock is a stable page for the saver
	// to read while edits continue.
	snap := *s.page
	s.mu.Unlock()

	go func() {
		err := op(ctx, &snap)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			// Session ended mid-flight; drop the late resolution.
			return
		}
		if err != nil {
			s.saveState = StateError
		} else {
			if onSuccess != nil {
				onSuccess()
			}
			s.saveState = StateSaved
		}
		s.resetTimer = time.AfterFunc(s.resetAfter, s.resetToIdle)
	}()
	return true
}

func (s *Session) resetToIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.saveState == StateSaving {
		return
	}
	s.saveState = StateIdle
	s.resetTimer = nil
}

// Close ends the session. In-flight saves are not cancelled but their
// resolution is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
}
