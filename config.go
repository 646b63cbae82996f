package xz

import "math"

//Flags select optional decoder behaviour.
type Flags uint32

const (
	//TellNoCheck makes the decoder return NoCheck when the stream has no
	//integrity check.
	TellNoCheck Flags = 0x01
	//TellAnyCheck makes the decoder return GetCheck as soon as the check
	//kind is known.
	TellAnyCheck Flags = 0x04
	//Concatenated makes the decoder continue after the first stream instead
	//of stopping, and reject trailing garbage.
	Concatenated Flags = 0x08

	//SupportedFlags holds every flag the auto decoder accepts.
	SupportedFlags = TellNoCheck | TellAnyCheck | Concatenated
)

//MemLimitNone disables the memory usage limit.
const MemLimitNone uint64 = math.MaxUint64

//Config is the named form of the auto decoder options.
type Config struct {
	//MemLimit caps the dictionary a stream may ask for. Zero selects each
	//decoder's built in default.
	MemLimit     uint64
	TellNoCheck  bool
	TellAnyCheck bool
	Concatenated bool
}

//DefaultConfig returns the configuration used by the command line tool:
//no memory limit and concatenated streams allowed.
func DefaultConfig() Config {
	return Config{
		MemLimit:     MemLimitNone,
		Concatenated: true,
	}
}

//Flags returns c's options as a bitset.
func (c Config) Flags() (f Flags) {
	if c.TellNoCheck {
		f |= TellNoCheck
	}
	if c.TellAnyCheck {
		f |= TellAnyCheck
	}
	if c.Concatenated {
		f |= Concatenated
	}
	return
}

//NewAutoDecoder creates an AutoDecoder configured by c.
func (c Config) NewAutoDecoder() (*AutoDecoder, error) {
	return NewAutoDecoder(c.MemLimit, c.Flags())
}
