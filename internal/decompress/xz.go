package decompress

import (
	"io"

	"github.com/rsenn/xz"
)

//Xz decodes .xz and .lzma streams, telling them apart by their first byte.
type Xz struct {
	Config xz.Config
}

func (x Xz) Reader(src io.Reader) (io.ReadCloser, error) {
	r, err := xz.NewReader(src, x.Config)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (Xz) Name() string { return "xz" }
