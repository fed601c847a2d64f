// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marshal

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/util"
)

// MaximumTime - the largest representable point in time
//
// on the wire this is 0xffffffff
var MaximumTime = time.Unix(math.MaxUint32, 0).UTC()

// Writer - growable output buffer
type Writer struct {
	buffer []byte
}

// NewWriter - create an empty writer
func NewWriter() *Writer {
	return &Writer{
		buffer: make([]byte, 0, 256),
	}
}

// Bytes - the data written so far
func (w *Writer) Bytes() []byte {
	return w.buffer
}

// Len - number of bytes written
func (w *Writer) Len() int {
	return len(w.buffer)
}

// WriteUint8 - one byte
func (w *Writer) WriteUint8(value uint8) {
	w.buffer = append(w.buffer, value)
}

// WriteUint16 - two bytes little-endian
func (w *Writer) WriteUint16(value uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteUint32 - four bytes little-endian
func (w *Writer) WriteUint32(value uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteUint64 - eight bytes little-endian
func (w *Writer) WriteUint64(value uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteInt8 - one byte two's complement
func (w *Writer) WriteInt8(value int8) {
	w.WriteUint8(uint8(value))
}

// WriteInt16 - two bytes two's complement
func (w *Writer) WriteInt16(value int16) {
	w.WriteUint16(uint16(value))
}

// WriteInt32 - four bytes two's complement
func (w *Writer) WriteInt32(value int32) {
	w.WriteUint32(uint32(value))
}

// WriteInt64 - eight bytes two's complement
func (w *Writer) WriteInt64(value int64) {
	w.WriteUint64(uint64(value))
}

// WriteBool - 0x01 or 0x00
func (w *Writer) WriteBool(value bool) {
	if value {
		w.WriteUint8(0x01)
	} else {
		w.WriteUint8(0x00)
	}
}

// WriteVarint - base-128 variable length unsigned integer
func (w *Writer) WriteVarint(value uint64) {
	w.buffer = append(w.buffer, util.ToVarint64(value)...)
}

// WriteBytes - raw bytes with no length
func (w *Writer) WriteBytes(value []byte) {
	w.buffer = append(w.buffer, value...)
}

// WriteVarBytes - varint length then the bytes
func (w *Writer) WriteVarBytes(value []byte) {
	w.WriteVarint(uint64(len(value)))
	w.buffer = append(w.buffer, value...)
}

// WriteVarString - varint length then the string bytes
func (w *Writer) WriteVarString(value string) {
	w.WriteVarint(uint64(len(value)))
	w.buffer = append(w.buffer, value...)
}

// WritePointInTime - u32 seconds since the epoch
//
// sub-second parts are truncated, times before the epoch or after
// MaximumTime cannot be represented
func (w *Writer) WritePointInTime(value time.Time) error {
	seconds := value.Unix()
	if seconds < 0 || seconds > math.MaxUint32 {
		return errors.Wrapf(fault.ErrInvalidTime, "time: %s", value.UTC().Format(time.RFC3339))
	}
	w.WriteUint32(uint32(seconds))
	return nil
}
