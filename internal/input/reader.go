// internal/input/reader.go
//
// Background keystroke reader for the interactive round.
// Responsibilities:
//   - Read single bytes from the terminal (already in raw mode).
//   - Forward only ASCII decimal digits on a buffered channel.
//   - Terminate when the stop flag is raised, or on EOF / read error.
//
// The reader blocks inside Read, so after Stop it exits on the next keystroke
// or end of stream; callers join it best-effort via Done.

package input

import (
	"io"
	"sync/atomic"
)

// Reader turns a byte stream into a channel of digit characters.
type Reader struct {
	src    io.Reader
	digits chan byte
	done   chan struct{}
	stop   atomic.Bool
}

// New constructs a Reader over src. Start must be called before Digits
// produces anything.
func New(src io.Reader) *Reader {
	return &Reader{
		src:    src,
		digits: make(chan byte, 32),
		done:   make(chan struct{}),
	}
}

// Start launches the background read loop.
func (r *Reader) Start() {
	go r.loop()
}

// Digits is the stream of digit characters ('0'..'9') read so far.
// It is closed when the read loop exits.
func (r *Reader) Digits() <-chan byte {
	return r.digits
}

// Stop raises the stop flag. The loop notices it after its current blocking
// read returns, so termination may wait for one more keystroke.
func (r *Reader) Stop() {
	r.stop.Store(true)
}

// Done is closed once the read loop has exited.
func (r *Reader) Done() <-chan struct{} {
	return r.done
}

func (r *Reader) loop() {
	defer close(r.done)
	defer close(r.digits)

	var buf [1]byte
	for {
		n, err := r.src.Read(buf[:])
		if r.stop.Load() {
			return
		}
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		b := buf[0]
		if b < '0' || b > '9' {
			continue
		}
		// Non-blocking send: a human cannot outrun the consumer, and the
		// loop must not park on a channel nobody drains after round end.
		select {
		case r.digits <- b:
		default:
		}
	}
}
