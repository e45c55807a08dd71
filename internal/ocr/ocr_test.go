package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner records the invocation and returns canned output.
type stubRunner struct {
	out  string
	err  error
	name string
	args []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	if s.err != nil {
		return nil, nil, s.err
	}
	return []byte(s.out), nil, nil
}

func TestEngineExtract(t *testing.T) {
	r := &stubRunner{out: "MFG 15/01/2023\nEXP 15/01/2025\n"}
	e := NewEngine(Config{Command: "my-ocr", Language: "en"}, nil).WithRunner(r)

	text, err := e.Extract(context.Background(), "/tmp/label.jpg")
	require.NoError(t, err)
	assert.Equal(t, "MFG 15/01/2023\nEXP 15/01/2025\n", text)
	assert.Equal(t, "my-ocr", r.name)
	assert.Equal(t, []string{"--lang", "en", "/tmp/label.jpg"}, r.args)
}

func TestEngineDefaults(t *testing.T) {
	r := &stubRunner{out: "text"}
	e := NewEngine(Config{}, nil).WithRunner(r)

	_, err := e.Extract(context.Background(), "a.png")
	require.NoError(t, err)
	assert.Equal(t, "shelftrack-ocr", r.name)
	assert.Equal(t, []string{"--lang", "en", "a.png"}, r.args)
}

func TestEngineRunnerFailure(t *testing.T) {
	r := &stubRunner{err: errors.New("binary missing")}
	e := NewEngine(Config{}, nil).WithRunner(r)

	_, err := e.Extract(context.Background(), "a.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.png")
}

func TestEngineEmptyOutputIsNotAnError(t *testing.T) {
	r := &stubRunner{out: "  \n"}
	e := NewEngine(Config{}, nil).WithRunner(r)

	text, err := e.Extract(context.Background(), "blank.jpg")
	require.NoError(t, err)
	assert.Equal(t, "  \n", text)
}
