package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	spinnerFrames   = `|/-\`
	spinnerInterval = 100 * time.Millisecond
)

// startSpinner animates message on w until the returned func is called. In
// verbose mode the message is printed once, since log lines on stderr would
// tear the animation. The returned func may be called more than once.
func startSpinner(w io.Writer, message string) (stop func()) {
	if getVerbose() {
		_, _ = fmt.Fprintln(w, message)
		stop = func() {}
		return stop
	}

	quit := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)

		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			_, _ = fmt.Fprintf(w, "\r%s %c", message, spinnerFrames[frame%len(spinnerFrames)])

			select {
			case <-quit:
				_, _ = fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(message)+2))
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	stop = func() {
		once.Do(func() {
			close(quit)
			<-finished
		})
	}

	return stop
}
