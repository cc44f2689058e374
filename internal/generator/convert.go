package generator

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/xll-gen/bin2c/internal/codec"
)

// Options contains optional settings for a single conversion.
type Options struct {
	// Codec is applied to the input before rendering. Empty means codec.None.
	Codec codec.Kind
}

func (o Options) codec() codec.Kind {
	if o.Codec == "" {
		return codec.None
	}
	return o.Codec
}

// Result describes a completed conversion.
type Result struct {
	Input  string
	Output string
	Name   string
	Codec  codec.Kind
	// InputBytes is the size of the input file.
	InputBytes int64
	Stats
}

// Convert renders the file at inputPath as a C array named name and writes
// it to outputPath, truncating any existing content.
//
// The input is opened first, so a missing input never creates the output.
// On failure the output may be left partially written.
func Convert(inputPath, outputPath, name string, opts Options) (res Result, err error) {
	res = Result{Input: inputPath, Output: outputPath, Name: name, Codec: opts.codec()}

	in, err := os.Open(inputPath)
	if err != nil {
		return res, &FileAccessError{Op: "open input", Path: inputPath, Err: err}
	}
	defer in.Close()

	src := &inputReader{r: in, path: inputPath}
	payload, err := codec.Encode(res.Codec, src)
	if err != nil {
		return res, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return res, &FileAccessError{Op: "create output", Path: outputPath, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &FileAccessError{Op: "close output", Path: outputPath, Err: cerr}
		}
	}()

	bw := bufio.NewWriter(&outputWriter{w: out, path: outputPath})
	st, err := Render(bw, payload, name)
	if err != nil {
		return res, err
	}
	if err := bw.Flush(); err != nil {
		return res, err
	}

	res.InputBytes = src.n
	res.Stats = st

	slog.Debug("converted",
		"input", inputPath,
		"output", outputPath,
		"name", name,
		"codec", string(res.Codec),
		"bytes", st.Bytes,
		"lines", st.Lines,
	)
	return res, nil
}

// renderFile renders the input into memory, the way Convert would write it.
func renderFile(inputPath, name string, opts Options) ([]byte, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, &FileAccessError{Op: "open input", Path: inputPath, Err: err}
	}
	defer in.Close()

	payload, err := codec.Encode(opts.codec(), &inputReader{r: in, path: inputPath})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := Render(&buf, payload, name); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// inputReader counts bytes read and tags read failures with the input path.
type inputReader struct {
	r    io.Reader
	path string
	n    int64
}

func (r *inputReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.n += int64(n)
	if err != nil && err != io.EOF {
		err = &FileAccessError{Op: "read input", Path: r.path, Err: err}
	}
	return n, err
}

// outputWriter tags write failures with the output path.
type outputWriter struct {
	w    io.Writer
	path string
}

func (w *outputWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil {
		err = &FileAccessError{Op: "write output", Path: w.path, Err: err}
	}
	return n, err
}
