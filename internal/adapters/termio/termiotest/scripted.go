// Package termiotest provides an in-memory IO for tests.
package termiotest

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/drcDRt/tmc-cli/internal/adapters/termio"
	"github.com/drcDRt/tmc-cli/internal/ports"
	"github.com/stretchr/testify/assert"
)

var ErrNoScriptedPrompt = errors.New("no scripted prompt left")

type promptKind string

const (
	promptLine     promptKind = "line"
	promptPassword promptKind = "password"
)

type scriptedPrompt struct {
	kind   promptKind
	answer string
}

// Scripted is an in-memory IO that answers prompts from a queue and keeps
// every printed byte for assertions.
type Scripted struct {
	mu         sync.Mutex
	out        strings.Builder
	prompts    []scriptedPrompt
	asked      []string
	unexpected []string
	progress   []string
}

var _ ports.IO = (*Scripted)(nil)

func NewScripted() *Scripted {
	return &Scripted{}
}

func (s *Scripted) AddLinePrompt(answer string) {
	s.addPrompt(promptLine, answer)
}

func (s *Scripted) AddPasswordPrompt(answer string) {
	s.addPrompt(promptPassword, answer)
}

func (s *Scripted) addPrompt(kind promptKind, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, scriptedPrompt{kind: kind, answer: answer})
}

func (s *Scripted) Print(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out.WriteString(text)
}

func (s *Scripted) Println(text string) {
	s.Print(text + "\n")
}

func (s *Scripted) Printf(format string, args ...any) {
	s.Print(fmt.Sprintf(format, args...))
}

func (s *Scripted) PromptLine(label string) (string, error) {
	return s.answer(promptLine, label)
}

func (s *Scripted) PromptPassword(label string) (string, error) {
	return s.answer(promptPassword, label)
}

func (s *Scripted) answer(kind promptKind, label string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.asked = append(s.asked, label)
	if len(s.prompts) == 0 {
		s.unexpected = append(s.unexpected, fmt.Sprintf("%s prompt %q", kind, label))
		return "", fmt.Errorf("%s prompt %q: %w", kind, label, ErrNoScriptedPrompt)
	}

	next := s.prompts[0]
	if next.kind != kind {
		s.unexpected = append(s.unexpected, fmt.Sprintf("%s prompt %q while a %s prompt was scripted", kind, label, next.kind))
		return "", fmt.Errorf("%s prompt %q: scripted %s prompt: %w", kind, label, next.kind, ErrNoScriptedPrompt)
	}

	s.prompts = s.prompts[1:]
	return next.answer, nil
}

func (s *Scripted) Progress(label string) ports.ProgressTracker {
	return &scriptedTracker{io: s, label: label}
}

func (s *Scripted) Out() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.out.String()
}

// Asked returns the labels of every prompt shown so far.
func (s *Scripted) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.asked...)
}

func (s *Scripted) ProgressEvents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.progress...)
}

func (s *Scripted) AssertContains(t assert.TestingT, expected string) bool {
	return assert.Contains(t, s.Out(), expected)
}

func (s *Scripted) AssertNotContains(t assert.TestingT, unexpected string) bool {
	return assert.NotContains(t, s.Out(), unexpected)
}

// AssertAllPromptsUsed fails when scripted answers are left over or when a
// prompt was shown that had no scripted answer.
func (s *Scripted) AssertAllPromptsUsed(t assert.TestingT) bool {
	s.mu.Lock()
	remaining := len(s.prompts)
	unexpected := append([]string(nil), s.unexpected...)
	s.mu.Unlock()

	ok := assert.Zero(t, remaining, "scripted prompts left unused")
	return assert.Empty(t, unexpected, "prompts without scripted answers") && ok
}

type scriptedTracker struct {
	io    *Scripted
	label string
}

func (t *scriptedTracker) Progress(message string, fraction float64) {
	t.io.mu.Lock()
	defer t.io.mu.Unlock()

	t.io.progress = append(t.io.progress, fmt.Sprintf("%s: %s", t.label, termio.FormatProgress(message, fraction)))
}

func (t *scriptedTracker) Done() {}
