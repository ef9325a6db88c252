package testutil

import (
	"context"
	"strings"
)

type fakeResult struct {
	prefix string
	output string
	err    error
}

// FakeCommander records external command invocations and replays
// registered outputs. Prefixes are matched in registration order.
type FakeCommander struct {
	Calls   []string
	LastEnv map[string]string
	results []fakeResult
}

// NewFakeCommander creates an empty FakeCommander.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{}
}

// Register sets the output and error for commands starting with prefix.
func (f *FakeCommander) Register(prefix, output string, err error) {
	f.results = append(f.results, fakeResult{prefix: prefix, output: output, err: err})
}

// Run records the call and returns the first registered match.
func (f *FakeCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	call := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, call)
	for _, r := range f.results {
		if strings.HasPrefix(call, r.prefix) {
			return []byte(r.output), r.err
		}
	}
	return nil, nil
}

// RunWithEnv records the env and delegates to Run.
func (f *FakeCommander) RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	f.LastEnv = env
	return f.Run(ctx, name, args...)
}

// Called reports whether a command starting with prefix was run.
func (f *FakeCommander) Called(prefix string) bool {
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// FakePrompter replays scripted answers to Confirm calls and records
// the messages it was asked.
type FakePrompter struct {
	Answers  []bool
	Err      error
	Messages []string
}

// Confirm pops the next scripted answer. Once the answers run out it
// returns Err if set, otherwise it declines.
func (p *FakePrompter) Confirm(message string) (bool, error) {
	p.Messages = append(p.Messages, message)
	if len(p.Answers) > 0 {
		answer := p.Answers[0]
		p.Answers = p.Answers[1:]
		return answer, nil
	}
	if p.Err != nil {
		return false, p.Err
	}
	return false, nil
}
