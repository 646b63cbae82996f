package xz

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

const readerBufSize = 32 << 10

var errTruncated = fmt.Errorf("%w: %w", ErrData, io.ErrUnexpectedEOF)

//Reader decompresses an .xz or .lzma stream read from an underlying reader.
type Reader struct {
	r   io.Reader
	cfg Config
	dec *AutoDecoder

	in   []byte
	buf  Buffer
	eof  bool
	err  error
	told []Status
}

//NewReader returns a Reader decoding r according to cfg. Nothing is read
//from r until the first call to Read.
func NewReader(r io.Reader, cfg Config) (*Reader, error) {
	dec, err := cfg.NewAutoDecoder()
	if err != nil {
		return nil, err
	}
	return &Reader{
		r:   r,
		cfg: cfg,
		dec: dec,
		in:  make([]byte, readerBufSize),
	}, nil
}

//Reset makes z decode a new stream from r, reusing its decoder.
func (z *Reader) Reset(r io.Reader) error {
	if err := z.dec.Init(z.cfg.MemLimit, z.cfg.Flags()); err != nil {
		return err
	}
	z.r = r
	z.buf = Buffer{}
	z.eof = false
	z.err = nil
	z.told = z.told[:0]
	return nil
}

func (z *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 || z.err != nil {
		return 0, z.err
	}
	z.buf.Out = p
	z.buf.OutPos = 0
	for z.buf.OutPos == 0 && z.err == nil {
		if z.buf.AvailIn() == 0 && !z.eof {
			n, err := z.r.Read(z.in)
			z.buf.In = z.in[:n]
			z.buf.InPos = 0
			switch {
			case err == io.EOF:
				z.eof = true
			case err != nil:
				z.err = err
				continue
			}
		}
		action := Run
		if z.eof {
			action = Finish
		}
		inPos := z.buf.InPos
		st, err := z.dec.Code(&z.buf, action)
		switch {
		case err != nil:
			z.err = err
		case st == OK && action == Finish && z.buf.InPos == inPos && z.buf.OutPos == 0:
			//Nothing left to feed and the decoder cannot move.
			z.err = errTruncated
		case st == StreamEnd:
			z.err = io.EOF
		case IsInformational(st):
			Logger().Debug("stream status",
				zap.Stringer("status", st),
				zap.Stringer("check", z.dec.Check()))
			z.told = append(z.told, st)
		}
	}
	n := z.buf.OutPos
	z.buf.Out = nil
	if n > 0 {
		return n, nil
	}
	return 0, z.err
}

//Check returns the integrity check kind of the stream, once known.
func (z *Reader) Check() CheckID {
	return z.dec.Check()
}

//Told returns the informational statuses the decoder reported so far, in
//order.
func (z *Reader) Told() []Status {
	return z.told
}

//Close releases the decoder. It does not close the underlying reader.
func (z *Reader) Close() error {
	z.dec.End()
	return nil
}
