package decompress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/rsenn/xz"
	"github.com/stretchr/testify/require"
	uxz "github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

var text = []byte(strings.Repeat("pack my box with five dozen liquor jugs\n", 64))

func compress(t *testing.T, name string) []byte {
	t.Helper()
	var (
		buf bytes.Buffer
		w   io.WriteCloser
		err error
	)
	switch name {
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "zstd":
		w, err = zstd.NewWriter(&buf)
	case "lz4":
		w = lz4.NewWriter(&buf)
	case "xz":
		w, err = uxz.NewWriter(&buf)
	case "lzma":
		w, err = lzma.NewWriter(&buf)
	default:
		t.Fatalf("unknown format %q", name)
	}
	require.NoError(t, err)
	_, err = w.Write(text)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	for _, name := range []string{"gzip", "zstd", "lz4"} {
		t.Run(name, func(t *testing.T) {
			data := compress(t, name)
			d := Detect(data[:MagicLen])
			require.NotNil(t, d)
			require.Equal(t, name, d.Name())

			rdr, err := d.Reader(bytes.NewReader(data))
			require.NoError(t, err)
			defer rdr.Close()
			got, err := io.ReadAll(rdr)
			require.NoError(t, err)
			require.Equal(t, text, got)
		})
	}
}

func TestDetectFallsThrough(t *testing.T) {
	for _, name := range []string{"xz", "lzma"} {
		data := compress(t, name)
		require.Nil(t, Detect(data[:MagicLen]), name)

		rdr, err := Xz{Config: xz.DefaultConfig()}.Reader(bytes.NewReader(data))
		require.NoError(t, err)
		got, err := io.ReadAll(rdr)
		require.NoError(t, err)
		require.Equal(t, text, got)
		require.NoError(t, rdr.Close())
	}
	require.Nil(t, Detect(nil))
	require.Nil(t, Detect([]byte{0x1f}))
	require.Nil(t, Detect([]byte{0x28, 0xb5, 0x2f}))
}
