package decompress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

type GZip struct{}

func (g GZip) Reader(src io.Reader) (io.ReadCloser, error) {
	r, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (GZip) Name() string { return "gzip" }
