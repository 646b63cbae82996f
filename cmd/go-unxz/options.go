package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rsenn/xz"
	"github.com/rsenn/xz/internal/decompress"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var errUnknownSuffix = errors.New("unknown suffix, skipping")

type options struct {
	verbosity    int
	stdout       bool
	keep         bool
	force        bool
	singleStream bool
	memLimit     string
	any          bool
	threads      int
	check        bool

	mu sync.Mutex
}

func (o *options) config() (xz.Config, error) {
	cfg := xz.DefaultConfig()
	limit, err := parseSize(o.memLimit)
	if err != nil {
		return cfg, err
	}
	if limit != 0 {
		cfg.MemLimit = limit
	}
	cfg.Concatenated = !o.singleStream
	cfg.TellAnyCheck = o.check
	return cfg, nil
}

var suffixes = []struct {
	from, to string
	any      bool
}{
	{".txz", ".tar", false},
	{".tlz", ".tar", false},
	{".xz", "", false},
	{".lzma", "", false},
	{".tgz", ".tar", true},
	{".gz", "", true},
	{".zst", "", true},
	{".lz4", "", true},
}

//outputName strips a known compressed suffix from path. Longer suffixes
//are listed first.
func outputName(path string, anyFormat bool) (string, bool) {
	for _, s := range suffixes {
		if s.any && !anyFormat {
			continue
		}
		base, ok := strings.CutSuffix(path, s.from)
		if ok && base != "" && !os.IsPathSeparator(base[len(base)-1]) {
			return base + s.to, true
		}
	}
	return "", false
}

var units = []struct {
	suffix string
	mult   uint64
}{
	{"KiB", 1 << 10},
	{"MiB", 1 << 20},
	{"GiB", 1 << 30},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"G", 1 << 30},
}

//parseSize parses a byte count with an optional binary unit suffix. "max"
//means no limit.
func parseSize(s string) (uint64, error) {
	if strings.EqualFold(s, "max") {
		return xz.MemLimitNone, nil
	}
	num, mult := s, uint64(1)
	for _, u := range units {
		if n, ok := strings.CutSuffix(s, u.suffix); ok {
			num, mult = n, u.mult
			break
		}
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid memory limit %q: %w", s, err)
	}
	if n > math.MaxUint64/mult {
		return 0, fmt.Errorf("invalid memory limit %q: too large", s)
	}
	return n * mult, nil
}

func (o *options) decompressFile(cc *cobra.Command, path string, cfg xz.Config) error {
	out, ok := outputName(path, o.any)
	if !ok && !o.stdout {
		return errUnknownSuffix
	}
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	if o.stdout {
		check, err := decode(cc.OutOrStdout(), in, cfg, o.any)
		o.report(cc, path, check)
		return err
	}
	fi, err := in.Stat()
	if err != nil {
		return err
	}
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if o.force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(out, flag, fi.Mode().Perm())
	if err != nil {
		return err
	}
	check, err := decode(f, in, cfg, o.any)
	err = multierr.Append(err, f.Close())
	if err != nil {
		os.Remove(out)
		return err
	}
	o.report(cc, path, check)
	xz.Logger().Info("decompressed", zap.String("file", path), zap.String("output", out))
	if o.keep {
		return nil
	}
	return os.Remove(path)
}

func (o *options) report(cc *cobra.Command, name string, check xz.CheckID) {
	if !o.check {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(cc.ErrOrStderr(), "%s: %s\n", name, check)
}

//decode copies the decompressed contents of src to dst and returns the
//integrity check of the stream, if it has one.
func decode(dst io.Writer, src io.Reader, cfg xz.Config, anyFormat bool) (xz.CheckID, error) {
	br := bufio.NewReader(src)
	var d decompress.Decompressor = decompress.Xz{Config: cfg}
	if anyFormat {
		hdr, _ := br.Peek(decompress.MagicLen)
		if f := decompress.Detect(hdr); f != nil {
			d = f
		}
	}
	xz.Logger().Debug("decoding", zap.String("format", d.Name()))
	rc, err := d.Reader(br)
	if err != nil {
		return xz.CheckNone, err
	}
	defer rc.Close()
	_, err = io.Copy(dst, rc)
	check := xz.CheckNone
	if r, ok := rc.(*xz.Reader); ok {
		check = r.Check()
	}
	return check, err
}
