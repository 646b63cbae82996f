package xz

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ulikunitz/xz/lzma"
)

//aloneDecoder decodes the legacy .lzma format. The format has no integrity
//check and takes no flags, so it does not implement CheckReporter.
type aloneDecoder struct {
	*pullCoder
	cfg lzma.ReaderConfig
}

func newAloneDecoder(memLimit uint64) *aloneDecoder {
	d := &aloneDecoder{
		cfg: lzma.ReaderConfig{DictCap: aloneDictCap(memLimit)},
	}
	d.pullCoder = newPullCoder(d)
	return d
}

//aloneDictCap converts a memory limit to a dictionary capacity the lzma
//reader accepts.
func aloneDictCap(memLimit uint64) int {
	if memLimit == 0 {
		return 0
	}
	c := min(memLimit, uint64(lzma.MaxDictCap), uint64(math.MaxInt))
	return int(max(c, lzma.MinDictCap))
}

func (d *aloneDecoder) open(src io.Reader) (io.Reader, Status, error) {
	rd, err := d.cfg.NewReader(src)
	if err != nil {
		return nil, OK, err
	}
	return rd, OK, nil
}

func (d *aloneDecoder) wrap(err error, header bool) error {
	var dictErr *lzma.ErrDictSize
	switch {
	case errors.As(err, &dictErr):
		return fmt.Errorf("%w: %w", ErrMemLimit, err)
	case header:
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return fmt.Errorf("%w: %w", ErrData, err)
}
