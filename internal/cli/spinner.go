package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Spinner is the progress indicator shown while a layout or render stage
// runs. It animates on stderr so piped stdout output stays clean, and it
// stops on its own when the command's context is cancelled.
type Spinner struct {
	label   string
	ctx     context.Context
	cancel  context.CancelFunc
	halt    chan struct{}
	drained chan struct{}
	glyphs  []string
	mu      sync.Mutex
}

// newSpinner creates a spinner with the given status message.
func newSpinner(label string) *Spinner {
	return newSpinnerWithContext(context.Background(), label)
}

// newSpinnerWithContext creates a spinner tied to ctx. Interrupting the
// command clears the spinner line instead of leaving a half-drawn frame.
func newSpinnerWithContext(ctx context.Context, label string) *Spinner {
	spinCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		label:   label,
		ctx:     spinCtx,
		cancel:  cancel,
		halt:    make(chan struct{}),
		drained: make(chan struct{}),
		glyphs:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the animation in a background goroutine.
func (s *Spinner) Start() {
	go func() {
		defer close(s.drained)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.halt:
				return
			case <-ticker.C:
				glyph := s.glyphs[frame%len(s.glyphs)]
				s.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(glyph), StyleDim.Render(s.label))
				s.mu.Unlock()
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call repeatedly.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.halt:
	default:
		close(s.halt)
	}
	<-s.drained
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.label)+4))
}

// StopWithSuccess stops the spinner and prints a success line in its place.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line in its place.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner stopped because its context was
// cancelled rather than by an explicit Stop.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
