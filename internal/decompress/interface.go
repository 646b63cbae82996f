package decompress

import "io"

//Decompressor opens a compressed stream for reading.
type Decompressor interface {
	Reader(src io.Reader) (io.ReadCloser, error)
	//Name is the short name of the format, as used on the command line.
	Name() string
}
