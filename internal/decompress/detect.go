package decompress

import "bytes"

//MagicLen is how many leading bytes Detect needs to recognize every format.
const MagicLen = 4

var magics = []struct {
	magic []byte
	d     Decompressor
}{
	{[]byte{0x1f, 0x8b}, GZip{}},
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, Zstd{}},
	{[]byte{0x04, 0x22, 0x4d, 0x18}, Lz4{}},
}

//Detect returns the Decompressor whose magic number header starts with, or
//nil if none match. .xz and .lzma are not matched here; Xz tells those apart
//itself.
func Detect(header []byte) Decompressor {
	for _, m := range magics {
		if bytes.HasPrefix(header, m.magic) {
			return m.d
		}
	}
	return nil
}
