// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snapshot streams collections to and from durable storage. The
// format is a fixed magic header and format version followed by a
// zstd-compressed body of JSON-encoded elements, one per line.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/renameio/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/luxfi/sets"
	"github.com/luxfi/sets/logging"
)

const version byte = 1

var (
	magic = []byte("luxsets\x00")

	// ErrBadHeader is returned by Read when the stream does not start
	// with the snapshot magic.
	ErrBadHeader = errors.New("bad snapshot header")

	// ErrUnsupportedVersion is returned by Read when the stream carries a
	// format version this package cannot decode.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Option configures Write, Read, Save, and Load.
type Option func(*options)

type options struct {
	log   logging.Logger
	level zstd.EncoderLevel
}

func defaultOptions() *options {
	return &options{
		log:   logging.NoLogger,
		level: zstd.SpeedDefault,
	}
}

// WithLogger sets the logger progress is reported to. The default
// discards everything.
func WithLogger(log logging.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithLevel sets the zstd compression level used when writing.
func WithLevel(level zstd.EncoderLevel) Option {
	return func(o *options) { o.level = level }
}

// countingWriter tracks how many bytes pass through to the inner writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Write streams c's elements to w as a versioned, compressed snapshot.
// The element type must be JSON-encodable.
func Write[E any](w io.Writer, c sets.Collection[E], opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	start := time.Now()
	cw := &countingWriter{w: w}
	if _, err := cw.Write(magic); err != nil {
		return err
	}
	if _, err := cw.Write([]byte{version}); err != nil {
		return err
	}

	zw, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(o.level))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(zw)
	count := 0
	for e := range c.All() {
		if err := enc.Encode(e); err != nil {
			_ = zw.Close()
			return fmt.Errorf("encoding element %d: %w", count, err)
		}
		count++
	}
	if err := zw.Close(); err != nil {
		return err
	}

	o.log.Debug("wrote snapshot of %d elements (%d bytes) in %s", count, cw.n, time.Since(start))
	return nil
}

// Read restores a snapshot produced by Write, adding every decoded
// element to dst. Elements already in dst are left in place.
func Read[E any](r io.Reader, dst sets.Adder[E], opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	start := time.Now()
	header := make([]byte, len(magic)+1)
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if !bytes.Equal(header[:len(magic)], magic) {
		return ErrBadHeader
	}
	if v := header[len(magic)]; v != version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer zr.Close()

	dec := json.NewDecoder(zr)
	count := 0
	for {
		var e E
		if err := dec.Decode(&e); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("decoding element %d: %w", count, err)
		}
		dst.Add(e)
		count++
	}

	o.log.Debug("read snapshot of %d elements in %s", count, time.Since(start))
	return nil
}

// Save writes a snapshot of c to path atomically: the previous file
// contents remain in place until the full snapshot has been flushed.
func Save[E any](path string, c sets.Collection[E], opts ...Option) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return err
	}
	defer pending.Cleanup()

	if err := Write(pending, c, opts...); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}

// Load reads the snapshot at path into dst.
func Load[E any](path string, dst sets.Adder[E], opts ...Option) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Read(f, dst, opts...)
}
