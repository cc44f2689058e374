package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Kind names the transform applied to a payload before it is rendered.
type Kind string

const (
	// None embeds the input bytes untouched.
	None Kind = "none"
	// Zstd embeds a standard zstd frame.
	Zstd Kind = "zstd"
	// Lz4 embeds a standard LZ4 frame.
	Lz4 Kind = "lz4"
)

// ErrUnknownKind is returned by ParseKind for an unsupported codec name.
var ErrUnknownKind = errors.New("unknown codec")

// Kinds lists the supported codecs in the order they are shown to users.
var Kinds = []Kind{None, Zstd, Lz4}

// ParseKind converts a user supplied codec name. An empty name means None.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", None:
		return None, nil
	case Zstd:
		return Zstd, nil
	case Lz4:
		return Lz4, nil
	default:
		return "", fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownKind, s, allowed())
	}
}

func allowed() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Encode returns a reader over r transformed by kind.
// None hands r back as is so rendering keeps streaming; the compressed
// kinds buffer the whole payload in memory.
func Encode(kind Kind, r io.Reader) (io.Reader, error) {
	switch kind {
	case "", None:
		return r, nil
	case Zstd:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithZeroFrames(true),
		)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return bytes.NewReader(enc.EncodeAll(data, nil)), nil
	case Lz4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := io.Copy(zw, r); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return &buf, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Decode reverses Encode.
func Decode(kind Kind, r io.Reader) (io.Reader, error) {
	switch kind {
	case "", None:
		return r, nil
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(out), nil
	case Lz4:
		return lz4.NewReader(r), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
