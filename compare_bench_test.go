package huff

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/zstd"
)

// benchInput builds a few hundred kilobytes of log-like text with a skewed
// byte distribution, the kind of input a single-pass Huffman coder is
// expected to shrink.
func benchInput() []byte {
	rng := rand.New(rand.NewSource(99))
	words := []string{"GET", "POST", "/api/v1/items", "/health", "200", "404", "500", "1ms", "12ms", "120ms"}

	var buf bytes.Buffer
	for buf.Len() < 1<<18 {
		fmt.Fprintf(&buf, "%s %s %s %s\n",
			words[rng.Intn(len(words))], words[rng.Intn(len(words))],
			words[rng.Intn(len(words))], words[rng.Intn(len(words))])
	}
	return buf.Bytes()
}

func reportRatio(b *testing.B, original, compressed int) {
	b.ReportMetric(float64(compressed)/float64(original), "ratio")
}

func BenchmarkCompressHuff(b *testing.B) {
	data := benchInput()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	var size int
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := Compress(bytes.NewReader(data), &buf); err != nil {
			b.Fatal(err)
		}
		size = buf.Len()
	}
	reportRatio(b, len(data), size)
}

func BenchmarkCompressFlate(b *testing.B) {
	data := benchInput()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	var size int
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		w, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
		size = buf.Len()
	}
	reportRatio(b, len(data), size)
}

func BenchmarkCompressZstd(b *testing.B) {
	data := benchInput()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer enc.Close()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	var size int
	for i := 0; i < b.N; i++ {
		size = len(enc.EncodeAll(data, nil))
	}
	reportRatio(b, len(data), size)
}

func BenchmarkDecompressHuff(b *testing.B) {
	data := benchInput()
	var compressed bytes.Buffer
	if err := Compress(bytes.NewReader(data), &compressed); err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := Decompress(bytes.NewReader(compressed.Bytes()), io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
