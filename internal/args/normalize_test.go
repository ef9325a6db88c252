package args_test

import (
	"testing"

	"github.com/hbjs97/prj/internal/args"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_VerboseRelocation(t *testing.T) {
	// 위치와 무관하게 같은 정규형으로 수렴해야 한다
	want := []string{"--verbose", "create", "foo"}
	assert.Equal(t, want, args.Normalize([]string{"-v", "create", "foo"}))
	assert.Equal(t, want, args.Normalize([]string{"create", "-v", "foo"}))
	assert.Equal(t, want, args.Normalize([]string{"create", "foo", "-v"}))
	assert.Equal(t, want, args.Normalize([]string{"create", "foo", "--verbose"}))
}

func TestNormalize_VerboseNeverDuplicated(t *testing.T) {
	got := args.Normalize([]string{"-v", "create", "--verbose", "foo", "-v"})
	assert.Equal(t, []string{"--verbose", "create", "foo"}, got)
}

func TestNormalize_HomeKeyword(t *testing.T) {
	assert.Equal(t, []string{"navigate", "home"}, args.Normalize([]string{"home"}))
	assert.Equal(t,
		[]string{"--verbose", "navigate", "home"},
		args.Normalize([]string{"home", "-v"}))
}

func TestNormalize_KnownSubcommandPassthrough(t *testing.T) {
	tests := [][]string{
		{"create", "foo", "--env"},
		{"delete", "foo"},
		{"list"},
		{"navigate", "foo"},
		{"hook", "--shell", "zsh"},
		{"doctor"},
	}
	for _, tokens := range tests {
		assert.Equal(t, tokens, args.Normalize(tokens))
	}
}

func TestNormalize_DefaultNavigate(t *testing.T) {
	assert.Equal(t, []string{"navigate", "foo"}, args.Normalize([]string{"foo"}))
	assert.Equal(t,
		[]string{"--verbose", "navigate", "foo"},
		args.Normalize([]string{"foo", "-v"}))
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, args.Normalize(nil))
	assert.Empty(t, args.Normalize([]string{}))
	assert.Equal(t, []string{"--verbose"}, args.Normalize([]string{"-v"}))
}

func TestNormalize_LeadingFlagPassthrough(t *testing.T) {
	got := args.Normalize([]string{"--help"})
	assert.Equal(t, []string{"--help"}, got)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"-v", "create", "foo"},
		{"home"},
		{"foo", "-v"},
		{"list"},
		nil,
	}
	for _, in := range inputs {
		once := args.Normalize(in)
		twice := args.Normalize(once)
		assert.Equal(t, once, twice)
	}
}
