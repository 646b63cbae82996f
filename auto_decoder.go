package xz

import (
	"fmt"

	"go.uber.org/zap"
)

//errTrailing is returned when bytes follow a finished stream that may not
//be followed by anything.
var errTrailing = fmt.Errorf("%w: trailing data after end of stream", ErrData)

type sequence int

const (
	seqInit sequence = iota
	seqCode
	seqFinish
)

func (s sequence) String() string {
	switch s {
	case seqInit:
		return "init"
	case seqCode:
		return "code"
	case seqFinish:
		return "finish"
	}
	return fmt.Sprintf("sequence(%d)", int(s))
}

//AutoDecoder decodes either an .xz or an .lzma stream, picking the format
//from the first input byte. It is itself a Coder.
//
//A single AutoDecoder can decode any number of streams one after another;
//call Init between them.
type AutoDecoder struct {
	next     NextCoder
	memLimit uint64
	flags    Flags
	seq      sequence
}

//NewAutoDecoder returns an AutoDecoder. No decoder is created until the
//first input byte arrives.
func NewAutoDecoder(memLimit uint64, flags Flags) (*AutoDecoder, error) {
	d := new(AutoDecoder)
	if err := d.Init(memLimit, flags); err != nil {
		return nil, err
	}
	return d, nil
}

//Init prepares d for a new stream. Unsupported flags return ErrOptions and
//leave d exactly as it was. The decoder chosen for the previous stream
//stays allocated until the next one replaces it or End is called.
func (d *AutoDecoder) Init(memLimit uint64, flags Flags) error {
	if bad := flags &^ SupportedFlags; bad != 0 {
		return fmt.Errorf("%w: flags %#x", ErrOptions, uint32(bad))
	}
	d.memLimit = memLimit
	d.flags = flags
	d.seq = seqInit
	return nil
}

//Code decodes from b.In into b.Out.
func (d *AutoDecoder) Code(b *Buffer, action Action) (Status, error) {
	seq, st, err := d.step(b, action)
	d.seq = seq
	return st, err
}

//step runs the state machine from d.seq and returns the state to continue
//from next time.
func (d *AutoDecoder) step(b *Buffer, action Action) (sequence, Status, error) {
	seq := d.seq
	for {
		switch seq {
		case seqInit:
			if b.InPos >= len(b.In) {
				return seqInit, OK, nil
			}
			//Advance before setting up the decoder so that a NoCheck or
			//GetCheck return resumes in seqCode.
			seq = seqCode
			st, err := d.detect(b.In[b.InPos])
			if err != nil || st != OK {
				return seq, st, err
			}

		case seqCode:
			st, err := d.next.Code(b, action)
			if err != nil || st != StreamEnd || d.flags&Concatenated == 0 {
				return seq, st, err
			}
			seq = seqFinish

		case seqFinish:
			//A finished .lzma stream cannot be followed by anything, and
			//the .xz decoder has already consumed every stream it could.
			if b.InPos < len(b.In) {
				return seq, OK, errTrailing
			}
			if action == Finish {
				return seq, StreamEnd, nil
			}
			return seq, OK, nil

		default:
			return seq, OK, fmt.Errorf("%w: auto decoder in state %v", ErrProg, seq)
		}
	}
}

//detect installs the decoder for the stream starting with lead.
func (d *AutoDecoder) detect(lead byte) (Status, error) {
	if lead == streamMagic0 {
		Logger().Debug("detected .xz stream",
			zap.Uint64("memlimit", d.memLimit),
			zap.Uint32("flags", uint32(d.flags)))
		return OK, d.next.Replace(func() (Coder, error) {
			sd, err := newStreamDecoder(d.memLimit, d.flags)
			if err != nil {
				return nil, err
			}
			return sd, nil
		})
	}
	Logger().Debug("detected .lzma stream",
		zap.Uint64("memlimit", d.memLimit),
		zap.Uint8("lead", lead))
	err := d.next.Replace(func() (Coder, error) {
		return newAloneDecoder(d.memLimit), nil
	})
	if err != nil {
		return OK, err
	}
	//The .lzma decoder takes no flags, so the check related ones are
	//answered here. The format never has a check.
	switch {
	case d.flags&TellNoCheck != 0:
		return NoCheck, nil
	case d.flags&TellAnyCheck != 0:
		return GetCheck, nil
	}
	return OK, nil
}

//Check returns the integrity check of the stream being decoded. It is
//CheckNone before detection and for .lzma streams.
func (d *AutoDecoder) Check() CheckID {
	if d.seq == seqInit {
		return CheckNone
	}
	return d.next.Check()
}

//Detected reports whether the format of the current stream has been
//chosen.
func (d *AutoDecoder) Detected() bool {
	return d.seq != seqInit
}

//End releases the nested decoder. It is safe to call before any input has
//been seen.
func (d *AutoDecoder) End() {
	d.next.End()
	d.seq = seqInit
}

//IsInformational reports whether st only carries information and decoding
//should simply continue.
func IsInformational(st Status) bool {
	return st == NoCheck || st == GetCheck
}

