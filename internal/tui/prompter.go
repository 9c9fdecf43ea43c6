// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned by a [Prompter] when the user pressed Ctrl+C
// while a prompt was waiting for input.
var ErrInterrupted = errors.New("interrupted")

// Prompter reads user input one answer at a time.
//
// Both methods return io.EOF when the input is exhausted and ErrInterrupted
// on a keyboard interrupt.
type Prompter interface {
	// Prompt prints label and returns the next line without its line ending.
	Prompt(ctx context.Context, label string) (string, error)
	// Password prints label and reads a line without echoing it.
	Password(ctx context.Context, label string) (string, error)
}

type lineResult struct {
	line string
	err  error
}

// TerminalPrompter is the [Prompter] used by the real client.
//
// On a terminal every answer is read by a one-field textinput program, and
// Ctrl+C arrives there as a key. Redirected input is read line by line by a
// background goroutine on demand, so that a prompt can be abandoned when
// SIGINT arrives.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer

	terminal  bool
	readField func(ctx context.Context, label string, echo textinput.EchoMode) (string, error)

	requests   chan struct{}
	lines      chan lineResult
	interrupts <-chan os.Signal
	stop       func()

	pending bool
	once    sync.Once
}

// NewTerminalPrompter returns a prompter over in and out that turns SIGINT
// into ErrInterrupted. Close must be called to restore default signal
// handling.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	p := newTerminalPrompter(in, out, signals)
	p.stop = func() { signal.Stop(signals) }
	return p
}

func newTerminalPrompter(in io.Reader, out io.Writer, interrupts <-chan os.Signal) *TerminalPrompter {
	p := &TerminalPrompter{
		in:         in,
		out:        out,
		terminal:   isTerminal(in),
		requests:   make(chan struct{}),
		lines:      make(chan lineResult, 1),
		interrupts: interrupts,
		stop:       func() {},
	}
	p.readField = func(ctx context.Context, label string, echo textinput.EchoMode) (string, error) {
		return readLine(ctx, p.in, p.out, label, echo)
	}
	go p.readLines()
	return p
}

func (p *TerminalPrompter) readLines() {
	reader := bufio.NewReader(p.in)
	for range p.requests {
		line, err := reader.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		p.lines <- lineResult{line: strings.TrimRight(line, "\r\n"), err: err}
	}
}

func (p *TerminalPrompter) Prompt(ctx context.Context, label string) (string, error) {
	if p.terminal {
		return p.readTerminal(ctx, label, textinput.EchoNormal)
	}
	return p.readRedirected(ctx, label)
}

// Password hides the answer on a terminal. Redirected input is not echoed by
// anything, so it is read like any other line.
func (p *TerminalPrompter) Password(ctx context.Context, label string) (string, error) {
	if p.terminal {
		return p.readTerminal(ctx, label, textinput.EchoPassword)
	}
	return p.readRedirected(ctx, label)
}

// readTerminal first reports a SIGINT received while no field was open, e.g.
// during a request.
func (p *TerminalPrompter) readTerminal(ctx context.Context, label string, echo textinput.EchoMode) (string, error) {
	select {
	case <-p.interrupts:
		return "", ErrInterrupted
	default:
	}
	return p.readField(ctx, label, echo)
}

// readRedirected reuses a line request abandoned by an interrupt instead of
// starting a second read on the same input.
func (p *TerminalPrompter) readRedirected(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.out, label)

	if !p.pending {
		p.requests <- struct{}{}
		p.pending = true
	}

	select {
	case res := <-p.lines:
		p.pending = false
		return res.line, res.err
	case <-p.interrupts:
		fmt.Fprintln(p.out)
		return "", ErrInterrupted
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops interrupt delivery and releases the reader goroutine once its
// current read finishes.
func (p *TerminalPrompter) Close() error {
	p.once.Do(func() {
		p.stop()
		close(p.requests)
	})
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
