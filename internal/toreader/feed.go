package toreader

import (
	"errors"
	"io"
)

//ErrStopped is returned by Feed once Suspend refuses to wait any longer.
var ErrStopped = errors.New("toreader: feed stopped")

//Feed is an io.Reader over a window of caller supplied bytes. When the
//window is empty and more input may follow, Read calls Suspend and expects
//the window to have been refilled when it returns.
type Feed struct {
	buf []byte
	n   int
	eof bool
	hit bool

	//Suspend hands control back to whoever fills the feed. It returns false
	//when no more input will ever be supplied.
	Suspend func() bool
}

//Fill replaces the window with p. If last is set, Read returns io.EOF once
//p is consumed instead of suspending.
func (f *Feed) Fill(p []byte, last bool) {
	f.buf = p
	f.n = 0
	f.eof = last
}

//Drain clears the window and returns how many of its bytes were read.
func (f *Feed) Drain() int {
	n := f.n
	f.buf = nil
	f.n = 0
	return n
}

//HitEOF reports whether Read or ReadByte has returned io.EOF.
func (f *Feed) HitEOF() bool {
	return f.hit
}

func (f *Feed) wait() error {
	for len(f.buf) == 0 {
		if f.eof {
			f.hit = true
			return io.EOF
		}
		if f.Suspend == nil || !f.Suspend() {
			return ErrStopped
		}
	}
	return nil
}

func (f *Feed) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := f.wait(); err != nil {
		return 0, err
	}
	n := copy(p, f.buf)
	f.buf = f.buf[n:]
	f.n += n
	return n, nil
}

func (f *Feed) ReadByte() (byte, error) {
	if err := f.wait(); err != nil {
		return 0, err
	}
	c := f.buf[0]
	f.buf = f.buf[1:]
	f.n++
	return c, nil
}
