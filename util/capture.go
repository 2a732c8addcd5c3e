// util/capture.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Capture files hold a sequence of records of a single type, msgpack
// encoded and zstd compressed, after a short header.

const (
	captureMagic   = "qfi-capture"
	CaptureVersion = 1
)

type captureHeader struct {
	Magic   string
	Version int
}

// CaptureWriter writes records of type T to a capture stream.
type CaptureWriter[T any] struct {
	f   io.Closer
	zw  *zstd.Encoder
	enc *msgpack.Encoder
	n   int
}

func NewCaptureWriter[T any](w io.Writer) (*CaptureWriter[T], error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}
	cw := &CaptureWriter[T]{zw: zw, enc: msgpack.NewEncoder(zw)}
	if err := cw.enc.Encode(captureHeader{Magic: captureMagic, Version: CaptureVersion}); err != nil {
		zw.Close()
		return nil, err
	}
	return cw, nil
}

// CreateCapture creates (or truncates) the file at path and returns a
// CaptureWriter that writes to it. Closing the writer closes the file.
func CreateCapture[T any](path string) (*CaptureWriter[T], error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	cw, err := NewCaptureWriter[T](f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cw.f = f
	return cw, nil
}

func (cw *CaptureWriter[T]) Write(v *T) error {
	if err := cw.enc.Encode(v); err != nil {
		return err
	}
	cw.n++
	return nil
}

// Count returns the number of records written so far.
func (cw *CaptureWriter[T]) Count() int {
	return cw.n
}

// Close flushes any buffered data.
func (cw *CaptureWriter[T]) Close() error {
	err := cw.zw.Close()
	if cw.f != nil {
		err = errors.Join(err, cw.f.Close())
	}
	return err
}

// CaptureReader reads the records of a capture stream written by a
// CaptureWriter[T].
type CaptureReader[T any] struct {
	f   io.Closer
	zr  *zstd.Decoder
	dec *msgpack.Decoder
}

func NewCaptureReader[T any](r io.Reader) (*CaptureReader[T], error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, err
	}

	cr := &CaptureReader[T]{zr: zr, dec: msgpack.NewDecoder(zr)}
	var hdr captureHeader
	if err := cr.dec.Decode(&hdr); err != nil {
		zr.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotCaptureFile, err)
	}
	if hdr.Magic != captureMagic {
		zr.Close()
		return nil, ErrNotCaptureFile
	}
	if hdr.Version != CaptureVersion {
		zr.Close()
		return nil, fmt.Errorf("%d: %w", hdr.Version, ErrBadCaptureVersion)
	}
	return cr, nil
}

// OpenCapture returns a CaptureReader for the capture file at path.
func OpenCapture[T any](path string) (*CaptureReader[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	cr, err := NewCaptureReader[T](f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cr.f = f
	return cr, nil
}

// Next returns the next record; io.EOF is returned after the last one.
func (cr *CaptureReader[T]) Next() (T, error) {
	var v T
	err := cr.dec.Decode(&v)
	return v, err
}

func (cr *CaptureReader[T]) Close() error {
	cr.zr.Close()
	if cr.f != nil {
		return cr.f.Close()
	}
	return nil
}
