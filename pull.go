package xz

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/rsenn/xz/internal/toreader"
)

//pullChunk bounds how much output a single decoder read may produce.
const pullChunk = 16 << 10

//pullSource adapts an io.Reader based decoder to pullCoder.
type pullSource interface {
	//open wraps src in a decoder. The returned Status is reported to the
	//caller once, before any output.
	open(src io.Reader) (io.Reader, Status, error)
	//wrap maps a decoder error onto this package's errors. header is set
	//for errors returned by open.
	wrap(err error, header bool) error
}

type pullStep struct {
	status Status
	output bool
	err    error
}

//pullCoder runs a pull style decoder as a Coder. The decoder runs inside an
//iter.Pull coroutine that suspends whenever the feed is empty, so control
//alternates between Code and the decoder and never runs concurrently.
type pullCoder struct {
	src  pullSource
	feed toreader.Feed
	next func() (pullStep, bool)
	stop func()

	scratch []byte
	pending []byte
	room    int

	ended bool
	err   error
}

func newPullCoder(src pullSource) *pullCoder {
	c := &pullCoder{
		src:     src,
		scratch: make([]byte, pullChunk),
	}
	c.next, c.stop = iter.Pull(c.run)
	return c
}

func (c *pullCoder) run(yield func(pullStep) bool) {
	c.feed.Suspend = func() bool {
		return yield(pullStep{status: OK})
	}
	rd, st, err := c.src.open(&c.feed)
	if err != nil {
		yield(pullStep{err: c.fail(err, true)})
		return
	}
	if st != OK && !yield(pullStep{status: st}) {
		return
	}
	for {
		p := c.scratch[:c.want()]
		n, err := rd.Read(p)
		c.pending = p[:n]
		switch {
		case err == io.EOF:
			yield(pullStep{status: StreamEnd})
			return
		case err != nil:
			yield(pullStep{err: c.fail(err, false)})
			return
		}
		if !yield(pullStep{output: true}) {
			return
		}
	}
}

//want sizes the next read to the caller's free output space so short
//windows get output without waiting for a full chunk.
func (c *pullCoder) want() int {
	return min(max(c.room, 1), len(c.scratch))
}

func (c *pullCoder) fail(err error, header bool) error {
	if errors.Is(err, toreader.ErrStopped) {
		return err
	}
	err = c.src.wrap(err, header)
	if errors.Is(err, ErrFormat) && c.feed.HitEOF() {
		//Ran out of input before the header was complete.
		return fmt.Errorf("%w: %w", ErrData, io.ErrUnexpectedEOF)
	}
	return err
}

func (c *pullCoder) flush(b *Buffer) {
	n := copy(b.Out[b.OutPos:], c.pending)
	b.OutPos += n
	c.pending = c.pending[n:]
}

func (c *pullCoder) Code(b *Buffer, action Action) (Status, error) {
	if c.next == nil {
		return OK, ErrProg
	}
	for {
		c.flush(b)
		switch {
		case len(c.pending) > 0:
			return OK, nil
		case c.err != nil:
			return OK, c.err
		case c.ended:
			return StreamEnd, nil
		}
		c.feed.Fill(b.In[b.InPos:], action == Finish)
		c.room = b.AvailOut()
		st, ok := c.next()
		b.InPos += c.feed.Drain()
		switch {
		case !ok:
			c.err = ErrProg
		case st.err != nil:
			c.err = st.err
		case st.status == StreamEnd:
			c.ended = true
		case st.output:
		default:
			return st.status, nil
		}
	}
}

func (c *pullCoder) End() {
	if c.stop != nil {
		c.stop()
	}
	c.next, c.stop = nil, nil
	c.scratch, c.pending = nil, nil
}
