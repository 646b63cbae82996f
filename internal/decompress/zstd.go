package decompress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type Zstd struct{}

func (z Zstd) Reader(src io.Reader) (io.ReadCloser, error) {
	r, err := zstd.NewReader(src, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return r.IOReadCloser(), nil
}

func (Zstd) Name() string { return "zstd" }
