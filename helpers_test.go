package xz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	uxz "github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

var (
	foxText  = []byte(strings.Repeat("The quick brown fox jumps over the lazy dog.\n", 40))
	lionText = []byte(strings.Repeat("Lions sleep in the shade at noon.\n", 25))
)

func xzData(t testing.TB, data []byte, check byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	cfg := uxz.WriterConfig{CheckSum: check, NoCheckSum: check == uxz.None}
	w, err := cfg.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, byte(streamMagic0), buf.Bytes()[0])
	return buf.Bytes()
}

func lzmaData(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NotEqual(t, byte(streamMagic0), buf.Bytes()[0])
	return buf.Bytes()
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

//result is what drive observed.
type result struct {
	out      []byte
	status   Status
	err      error
	told     []Status
	inPos    int
	finishes int
}

//drive feeds input to c, exposing inStep more bytes per call and offering
//outStep bytes of output space per call. The last call uses Finish. It
//stops at the first StreamEnd or error.
func drive(t testing.TB, c Coder, input []byte, inStep, outStep int) result {
	t.Helper()
	var (
		res   result
		b     Buffer
		inEnd int
	)
	out := make([]byte, outStep)
	for i := 0; i < 1<<20; i++ {
		inEnd = min(inEnd+inStep, len(input))
		b.In = input[:inEnd]
		b.Out = out
		b.OutPos = 0
		action := Run
		if inEnd == len(input) {
			action = Finish
			res.finishes++
		}
		st, err := c.Code(&b, action)
		res.out = append(res.out, out[:b.OutPos]...)
		res.inPos = b.InPos
		if err != nil {
			res.err = err
			return res
		}
		switch {
		case st == StreamEnd:
			res.status = st
			return res
		case IsInformational(st):
			res.told = append(res.told, st)
		}
	}
	t.Fatal("coder made no progress")
	return res
}
