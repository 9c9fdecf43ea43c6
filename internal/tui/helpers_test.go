package tui

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/art"
	"github.com/MKhiriev/svp-client/internal/config"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/internal/service"
	"github.com/stretchr/testify/require"
)

type step struct {
	answer string
	err    error
}

// scriptedPrompter answers prompts from a fixed script and reports io.EOF
// once the script runs out.
type scriptedPrompter struct {
	steps  []step
	labels []string
	masked []string
}

func script(answers ...string) *scriptedPrompter {
	p := &scriptedPrompter{}
	for _, a := range answers {
		p.steps = append(p.steps, step{answer: a})
	}
	return p
}

func (p *scriptedPrompter) then(err error) *scriptedPrompter {
	p.steps = append(p.steps, step{err: err})
	return p
}

func (p *scriptedPrompter) and(answers ...string) *scriptedPrompter {
	for _, a := range answers {
		p.steps = append(p.steps, step{answer: a})
	}
	return p
}

func (p *scriptedPrompter) next(ctx context.Context, label string) (string, error) {
	p.labels = append(p.labels, label)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(p.steps) == 0 {
		return "", io.EOF
	}
	s := p.steps[0]
	p.steps = p.steps[1:]
	return s.answer, s.err
}

func (p *scriptedPrompter) Prompt(ctx context.Context, label string) (string, error) {
	return p.next(ctx, label)
}

func (p *scriptedPrompter) Password(ctx context.Context, label string) (string, error) {
	p.masked = append(p.masked, label)
	return p.next(ctx, label)
}

func (p *scriptedPrompter) remaining() int {
	return len(p.steps)
}

func newTestLoop(t *testing.T, serverURL string, testingMode bool, prompter Prompter) (*Loop, *bytes.Buffer) {
	t.Helper()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		ServerURL:      serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	gallery, err := art.NewGallery("")
	require.NoError(t, err)

	services := service.NewClientServices(serverAdapter, gallery, testingMode, logger.Nop())
	out := &bytes.Buffer{}
	return New(services, gallery, prompter, out, logger.Nop()), out
}
