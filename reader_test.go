package xz

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
	uxz "github.com/ulikunitz/xz"
)

func readAll(t *testing.T, r io.Reader, cfg Config) ([]byte, *Reader, error) {
	t.Helper()
	z, err := NewReader(r, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { z.Close() })
	data, err := io.ReadAll(z)
	return data, z, err
}

func TestReader(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input []byte
		want  []byte
		check CheckID
	}{
		{"xz", xzData(t, foxText, uxz.CRC64), foxText, CheckCRC64},
		{"xz no check", xzData(t, lionText, uxz.None), lionText, CheckNone},
		{"lzma", lzmaData(t, foxText), foxText, CheckNone},
		{"xz concatenated", concat(xzData(t, foxText, uxz.CRC32), xzData(t, lionText, uxz.CRC32)), concat(foxText, lionText), CheckCRC32},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, z, err := readAll(t, bytes.NewReader(tc.input), DefaultConfig())
			require.NoError(t, err)
			require.Equal(t, tc.want, data)
			require.Equal(t, tc.check, z.Check())

			data, _, err = readAll(t, iotest.OneByteReader(bytes.NewReader(tc.input)), DefaultConfig())
			require.NoError(t, err)
			require.Equal(t, tc.want, data)

			data, _, err = readAll(t, iotest.DataErrReader(bytes.NewReader(tc.input)), DefaultConfig())
			require.NoError(t, err)
			require.Equal(t, tc.want, data)
		})
	}
}

func TestReaderTold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TellNoCheck = true
	_, z, err := readAll(t, bytes.NewReader(lzmaData(t, foxText)), cfg)
	require.NoError(t, err)
	require.Equal(t, []Status{NoCheck}, z.Told())
}

func TestReaderErrors(t *testing.T) {
	in := xzData(t, foxText, uxz.CRC64)
	_, _, err := readAll(t, bytes.NewReader(in[:len(in)/2]), DefaultConfig())
	require.ErrorIs(t, err, ErrData)

	_, _, err = readAll(t, bytes.NewReader(nil), DefaultConfig())
	require.ErrorIs(t, err, ErrData)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, _, err = readAll(t, bytes.NewReader(concat(lzmaData(t, foxText), []byte("x"))), DefaultConfig())
	require.ErrorIs(t, err, ErrData)

	_, _, err = readAll(t, iotest.ErrReader(io.ErrClosedPipe), DefaultConfig())
	require.ErrorIs(t, err, io.ErrClosedPipe)

	_, err = NewReader(bytes.NewReader(in), Config{})
	require.NoError(t, err)
}

func TestReaderSingleStream(t *testing.T) {
	in := concat(lzmaData(t, foxText), []byte("not compressed"))
	cfg := DefaultConfig()
	cfg.Concatenated = false
	data, _, err := readAll(t, bytes.NewReader(in), cfg)
	require.NoError(t, err)
	require.Equal(t, foxText, data)
}

func TestReaderReset(t *testing.T) {
	z, err := NewReader(bytes.NewReader(xzData(t, foxText, uxz.CRC64)), DefaultConfig())
	require.NoError(t, err)
	defer z.Close()
	data, err := io.ReadAll(z)
	require.NoError(t, err)
	require.Equal(t, foxText, data)

	require.NoError(t, z.Reset(bytes.NewReader(lzmaData(t, lionText))))
	data, err = io.ReadAll(z)
	require.NoError(t, err)
	require.Equal(t, lionText, data)
	require.Equal(t, CheckNone, z.Check())

	n, err := z.Read(make([]byte, 8))
	require.Zero(t, n)
	require.Equal(t, io.EOF, err)
}
