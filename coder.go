// Package xz decodes .xz and legacy .lzma streams behind a single
// incremental interface. The format is detected from the first input byte.
//
// Coders are driven by repeated calls to Code with input and output windows
// held in a Buffer. A call consumes what it can, produces what fits, and
// returns. Nothing blocks: when a coder runs out of input or output space it
// returns OK and expects to be called again with more of either.
package xz

import (
	"errors"
	"strconv"
)

//Action tells a Coder whether more input may follow the current window.
type Action int

const (
	//Run allows the coder to return and wait for more input.
	Run Action = iota
	//Finish asserts that no input follows the current window.
	Finish
)

func (a Action) String() string {
	switch a {
	case Run:
		return "Run"
	case Finish:
		return "Finish"
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

//Status is the non-error result of a Code call.
type Status int

const (
	//OK means progress was made, or none was possible yet.
	OK Status = iota
	//StreamEnd means the stream was decoded completely.
	StreamEnd
	//NoCheck reports that the stream carries no integrity check.
	//Decoding continues on the next call.
	NoCheck
	//GetCheck reports that the integrity check kind is now known and can be
	//read with Check. Decoding continues on the next call.
	GetCheck
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case StreamEnd:
		return "StreamEnd"
	case NoCheck:
		return "NoCheck"
	case GetCheck:
		return "GetCheck"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

//CheckID identifies the integrity check of an .xz stream. Values match the
//check field of the .xz stream header.
type CheckID int

const (
	CheckNone   CheckID = 0x00
	CheckCRC32  CheckID = 0x01
	CheckCRC64  CheckID = 0x04
	CheckSHA256 CheckID = 0x0A
)

func (c CheckID) String() string {
	switch c {
	case CheckNone:
		return "None"
	case CheckCRC32:
		return "CRC32"
	case CheckCRC64:
		return "CRC64"
	case CheckSHA256:
		return "SHA256"
	}
	return "Check(" + strconv.Itoa(int(c)) + ")"
}

var (
	//ErrData is returned for corrupt, truncated, or trailing data.
	ErrData = errors.New("xz: compressed data is corrupt")
	//ErrFormat is returned when the input is not in a recognized format.
	ErrFormat = errors.New("xz: file format not recognized")
	//ErrOptions is returned for unsupported flags or compression options.
	ErrOptions = errors.New("xz: unsupported options")
	//ErrMem is returned when a coder could not be created.
	ErrMem = errors.New("xz: cannot allocate coder")
	//ErrMemLimit is returned when decoding needs more memory than allowed.
	ErrMemLimit = errors.New("xz: memory usage limit reached")
	//ErrUnsupportedCheck is returned for an unknown integrity check type.
	ErrUnsupportedCheck = errors.New("xz: unsupported integrity check")
	//ErrProg is returned when a coder is misused or reaches an impossible state.
	ErrProg = errors.New("xz: programming error")
)

//Buffer holds the input and output windows of a Code call. Code reads
//In[InPos:] and writes Out[OutPos:], advancing both positions in place.
type Buffer struct {
	In     []byte
	InPos  int
	Out    []byte
	OutPos int
}

//AvailIn returns the number of unconsumed input bytes.
func (b *Buffer) AvailIn() int {
	return len(b.In) - b.InPos
}

//AvailOut returns the free space left in the output window.
func (b *Buffer) AvailOut() int {
	return len(b.Out) - b.OutPos
}

//Coder is an incremental decoder.
//
//Code consumes input and produces output until either window is exhausted,
//the stream ends, or there is something to report. Calling Code again with
//the unconsumed input plus any new input resumes where the last call stopped.
//With Run a coder may return OK while waiting for input. With Finish it must
//eventually return StreamEnd or an error.
//
//End releases everything the coder holds, including nested coders. It must
//be called once when the coder is no longer needed.
type Coder interface {
	Code(b *Buffer, action Action) (Status, error)
	End()
}

//CheckReporter is implemented by coders that know the integrity check of
//the stream they decode.
type CheckReporter interface {
	Check() CheckID
}
