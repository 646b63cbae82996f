package xz

import (
	"errors"
	"fmt"
	"io"
	"math"

	txz "github.com/therootcompany/xz"
)

//streamMagic0 is the first byte of the .xz stream header magic.
const streamMagic0 = 0xFD

//streamDecoder decodes the .xz container format.
type streamDecoder struct {
	*pullCoder
	dictMax uint32
	flags   Flags
	rd      *txz.Reader
}

func newStreamDecoder(memLimit uint64, flags Flags) (*streamDecoder, error) {
	if flags&^SupportedFlags != 0 {
		return nil, ErrOptions
	}
	d := &streamDecoder{
		dictMax: streamDictMax(memLimit),
		flags:   flags,
	}
	d.pullCoder = newPullCoder(d)
	return d, nil
}

//streamDictMax converts a memory limit to the LZMA2 dictionary ceiling.
func streamDictMax(memLimit uint64) uint32 {
	if memLimit == 0 {
		return txz.DefaultDictMax
	}
	return uint32(min(memLimit, math.MaxUint32))
}

func (d *streamDecoder) open(src io.Reader) (io.Reader, Status, error) {
	rd, err := txz.NewReader(src, d.dictMax)
	if err != nil {
		return nil, OK, err
	}
	rd.Multistream(d.flags&Concatenated != 0)
	d.rd = rd
	switch {
	case d.flags&TellNoCheck != 0 && rd.CheckType == txz.CheckNone:
		return rd, NoCheck, nil
	case d.flags&TellAnyCheck != 0:
		return rd, GetCheck, nil
	}
	return rd, OK, nil
}

func (d *streamDecoder) wrap(err error, header bool) error {
	switch {
	case errors.Is(err, txz.ErrMemlimit):
		return fmt.Errorf("%w: %w", ErrMemLimit, err)
	case errors.Is(err, txz.ErrOptions):
		return fmt.Errorf("%w: %w", ErrOptions, err)
	case errors.Is(err, txz.ErrUnsupportedCheck):
		return fmt.Errorf("%w: %w", ErrUnsupportedCheck, err)
	case errors.Is(err, txz.ErrFormat) && header:
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	//A bad magic after the first stream is garbage, not another format.
	return fmt.Errorf("%w: %w", ErrData, err)
}

//Check returns the check kind from the most recent stream header.
func (d *streamDecoder) Check() CheckID {
	if d.rd == nil || d.rd.CheckType < 0 {
		return CheckNone
	}
	return CheckID(d.rd.CheckType)
}
