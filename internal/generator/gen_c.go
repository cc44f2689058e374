package generator

import (
	"io"
	"sync"
	"text/template"

	"github.com/xll-gen/bin2c/internal/templates"
)

// ChunkSize is the number of input bytes rendered on one data line.
const ChunkSize = 16

const hexDigits = "0123456789abcdef"

// Stats describes a rendered array.
type Stats struct {
	// Bytes is the number of array elements, the value of <name>_len.
	Bytes int64
	// Lines is the number of data lines between the braces.
	Lines int
}

var (
	arrayOnce sync.Once
	arrayTmpl *template.Template
	arrayErr  error
)

func arrayTemplate() (*template.Template, error) {
	arrayOnce.Do(func() {
		arrayTmpl, arrayErr = templates.Parse(templates.Array)
	})
	return arrayTmpl, arrayErr
}

// Render writes r as a C array named name:
//
//	#include <stdint.h>
//
//	uint8_t name[] = {
//		0x00, 0x01, ..., 0x0f,
//		0x10,
//	};
//
//	uint32_t name_len = sizeof(name);
//
// Every data line holds up to ChunkSize literals and ends with a comma.
// Newlines are always "\n". Errors from r and w are returned unchanged.
func Render(w io.Writer, r io.Reader, name string) (Stats, error) {
	var st Stats

	tmpl, err := arrayTemplate()
	if err != nil {
		return st, err
	}
	data := struct{ Name string }{name}

	if err := tmpl.ExecuteTemplate(w, "preamble", data); err != nil {
		return st, err
	}

	chunk := make([]byte, ChunkSize)
	line := make([]byte, 0, len("\t")+ChunkSize*len("0x00, "))
	for {
		n, err := io.ReadFull(r, chunk)
		if n > 0 {
			line = appendLine(line[:0], chunk[:n])
			if _, err := w.Write(line); err != nil {
				return st, err
			}
			st.Bytes += int64(n)
			st.Lines++
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return st, err
		}
	}

	if err := tmpl.ExecuteTemplate(w, "trailer", data); err != nil {
		return st, err
	}
	return st, nil
}

// appendLine appends "\t0xHH, ..., 0xHH,\n" for chunk to dst.
func appendLine(dst, chunk []byte) []byte {
	dst = append(dst, '\t')
	for i, b := range chunk {
		if i > 0 {
			dst = append(dst, ',', ' ')
		}
		dst = append(dst, '0', 'x', hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return append(dst, ',', '\n')
}
