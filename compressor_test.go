package blockpack

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Pallinder/go-randomdata"

	"github.com/blockpack/blockpack/codec"
)

// testInput builds a payload mixing compressible prose with stretches
// of raw bytes, so codecs see both easy and hard content.
func testInput(t *testing.T, size int) []byte {
	t.Helper()

	var b strings.Builder
	for b.Len() < size/2 {
		b.WriteString(randomdata.Paragraph())
		b.WriteString("\n")
	}

	buf := []byte(b.String())
	for i := len(buf); i < size; i++ {
		buf = append(buf, byte(i*2654435761))
	}

	return buf[:size]
}

func writeTempInput(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

// decode reverses a container: every frame's payload is decompressed
// to its original size and the results concatenated in frame order.
func decode(t *testing.T, data []byte, name string) []byte {
	t.Helper()

	dec := codec.Decompression(name)
	if dec == nil {
		t.Fatalf("No decompressor for codec %q", name)
	}

	out := make([]byte, 0)

	for _, f := range readFrames(t, data) {
		raw := make([]byte, f.originalSize)
		if err := dec.Decompress(f.payload, raw); err != nil {
			t.Fatalf("Failed decompressing %d byte frame: %v", f.compressedSize, err)
		}

		out = append(out, raw...)
	}

	return out
}

func TestCompressFileRoundTrip(t *testing.T) {
	input := testInput(t, 100000)
	inputPath := writeTempInput(t, input)

	for _, name := range codec.Names() {
		comp, err := New(Options{BlockSize: 8192, Threads: 4, Codec: name})
		if err != nil {
			t.Fatalf("Wrong response for codec %q: want: <nil> got: %v", name, err)
		}

		outputPath := filepath.Join(t.TempDir(), name+".bpk")

		if err := comp.CompressFile(inputPath, outputPath); err != nil {
			t.Fatalf("Wrong response compressing with %q: want: <nil> got: %v", name, err)
		}

		container, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}

		if got := decode(t, container, name); !bytes.Equal(got, input) {
			t.Errorf("Round trip mismatch for codec %q: want: %d bytes got: %d bytes", name, len(input), len(got))
		}
	}
}

func TestCompressFileBoundaries(t *testing.T) {
	// Empty input, input smaller than one block, and input an exact
	// multiple of the block size.
	var tests = []struct {
		size   int
		frames int
	}{
		{0, 0},
		{100, 1},
		{4096, 1},
		{8192, 2},
	}

	for _, test := range tests {
		input := testInput(t, test.size)
		inputPath := writeTempInput(t, input)
		outputPath := filepath.Join(t.TempDir(), "out.bpk")

		comp, err := New(Options{BlockSize: 4096, Threads: 2})
		if err != nil {
			t.Fatal(err)
		}

		if err := comp.CompressFile(inputPath, outputPath); err != nil {
			t.Fatalf("Wrong response for %d byte input: want: <nil> got: %v", test.size, err)
		}

		container, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}

		frames := readFrames(t, container)
		if len(frames) != test.frames {
			t.Errorf("Wrong frame count for %d byte input: want: %d got: %d", test.size, test.frames, len(frames))
		}

		if got := decode(t, container, DefaultCodec); !bytes.Equal(got, input) {
			t.Errorf("Round trip mismatch for %d byte input", test.size)
		}
	}
}

func TestCompressFileThreadCountInvariance(t *testing.T) {
	input := testInput(t, 100000)
	inputPath := writeTempInput(t, input)

	// 25 blocks of 4096 bytes, plus a short tail block.
	containers := make([][]byte, 0)

	for _, threads := range []int{1, 25, 1000} {
		comp, err := New(Options{BlockSize: 4096, Threads: threads})
		if err != nil {
			t.Fatal(err)
		}

		outputPath := filepath.Join(t.TempDir(), "out.bpk")

		if err := comp.CompressFile(inputPath, outputPath); err != nil {
			t.Fatalf("Wrong response for %d threads: want: <nil> got: %v", threads, err)
		}

		container, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}

		containers = append(containers, container)
	}

	for i := 1; i < len(containers); i++ {
		if !bytes.Equal(containers[0], containers[i]) {
			t.Errorf("Container differs between thread counts: %d vs %d bytes", len(containers[0]), len(containers[i]))
		}
	}
}

func TestCompressFileFrameSizes(t *testing.T) {
	// A 2.5 MiB input at the default 1 MiB block size always yields
	// exactly three frames: 1 MiB, 1 MiB, 0.5 MiB.
	input := testInput(t, 5<<19)
	inputPath := writeTempInput(t, input)
	outputPath := filepath.Join(t.TempDir(), "out.bpk")

	comp, err := New(Options{Threads: 3})
	if err != nil {
		t.Fatal(err)
	}

	if err := comp.CompressFile(inputPath, outputPath); err != nil {
		t.Fatal(err)
	}

	container, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}

	frames := readFrames(t, container)

	expected := []uint32{1048576, 1048576, 524288}

	if len(frames) != len(expected) {
		t.Fatalf("Wrong frame count: want: %d got: %d", len(expected), len(frames))
	}

	for i, f := range frames {
		if f.originalSize != expected[i] {
			t.Errorf("Wrong original size for frame %d: want: %d got: %d", i, expected[i], f.originalSize)
		}
	}
}

func TestCompressFileCodecFailure(t *testing.T) {
	input := testInput(t, 4000)
	inputPath := writeTempInput(t, input)
	outputPath := filepath.Join(t.TempDir(), "out.bpk")

	comp, err := New(Options{BlockSize: 1000, Threads: 2})
	if err != nil {
		t.Fatal(err)
	}

	// Fail block 2 only; blocks 0, 1 and 3 compress fine.
	comp.codec = &stubCodec{
		fail: func(src []byte) error {
			if bytes.Equal(src, input[2000:3000]) {
				return errors.New("injected failure")
			}
			return nil
		},
	}

	err = comp.CompressFile(inputPath, outputPath)
	if err == nil {
		t.Fatal("Wrong response for failing codec: want: error got: <nil>")
	}

	var cerr *CodecError
	if !errors.As(err, &cerr) {
		t.Fatalf("Wrong error type: want: *CodecError got: %T", err)
	}

	if cerr.Block != 2 {
		t.Errorf("Wrong failing block index: want: 2 got: %d", cerr.Block)
	}

	// No bytes may reach the output path on a codec failure.
	if _, serr := os.Stat(outputPath); !os.IsNotExist(serr) {
		t.Errorf("Output file should not exist, stat returned: %v", serr)
	}
}

func TestCompressFileMissingInput(t *testing.T) {
	comp, err := New(Options{Threads: 1})
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out.bpk")

	err = comp.CompressFile(filepath.Join(dir, "nope"), outputPath)
	if err == nil {
		t.Fatal("Wrong response for missing input: want: error got: <nil>")
	}

	if _, serr := os.Stat(outputPath); !os.IsNotExist(serr) {
		t.Errorf("Output file should not exist, stat returned: %v", serr)
	}
}

func TestNewValidation(t *testing.T) {
	var tests = []struct {
		opts Options
		ok   bool
	}{
		{Options{Threads: 1}, true},
		{Options{Threads: 64, BlockSize: 1, Codec: "snappy"}, true},
		{Options{Threads: 0}, false},
		{Options{Threads: -3}, false},
		{Options{Threads: 1, BlockSize: -1}, false},
		{Options{Threads: 1, BlockSize: maxBlockSize + 1}, false},
		{Options{Threads: 1, Codec: "magic"}, false},
	}

	for i, test := range tests {
		_, err := New(test.opts)

		if test.ok && err != nil {
			t.Errorf("Wrong response for options %d: want: <nil> got: %v", i, err)
		}
		if !test.ok && err == nil {
			t.Errorf("Wrong response for options %d: want: error got: <nil>", i)
		}
	}
}
