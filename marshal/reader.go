// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marshal

import (
	"encoding/binary"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/util"
)

// Reader - forward only cursor over a byte buffer
type Reader struct {
	buffer   []byte
	position int
}

// NewReader - create a cursor positioned at the start of buffer
//
// the buffer is not copied and must not be modified while reading
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer:   buffer,
		position: 0,
	}
}

// Position - current byte offset
func (r *Reader) Position() int {
	return r.position
}

// Remaining - number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.position
}

// take the next n bytes
func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, errors.Wrapf(fault.ErrTruncatedInput, "offset: %d wanted: %d available: %d", r.position, n, r.Remaining())
	}
	b := r.buffer[r.position : r.position+n]
	r.position += n
	return b, nil
}

// ReadUint8 - one byte
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 - two bytes little-endian
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 - four bytes little-endian
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.next(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 - eight bytes little-endian
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.next(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt8 - one byte two's complement
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadInt16 - two bytes two's complement
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadInt32 - four bytes two's complement
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 - eight bytes two's complement
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadBool - one byte, only 0x01 is true
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	if nil != err {
		return false, err
	}
	return 0x01 == v, nil
}

// ReadVarint - base-128 variable length unsigned integer
func (r *Reader) ReadVarint() (uint64, error) {
	start := r.position
	value, count := util.FromVarint64(r.buffer[r.position:])
	if 0 == count {
		if r.Remaining() >= util.Varint64MaximumBytes {
			return 0, errors.Wrapf(fault.ErrVarintOverflow, "offset: %d", start)
		}
		return 0, errors.Wrapf(fault.ErrTruncatedInput, "offset: %d varint", start)
	}
	r.position += count
	return value, nil
}

// ReadCount - a varint used as a length or item count
//
// the count cannot exceed the bytes remaining since every item
// occupies at least one byte
func (r *Reader) ReadCount() (int, error) {
	start := r.position
	n, count := util.ClippedVarint64(r.buffer[r.position:], 0, r.Remaining())
	if 0 == count {
		value, err := r.ReadVarint()
		if nil != err {
			return 0, err
		}
		return 0, errors.Wrapf(fault.ErrTruncatedInput, "offset: %d count: %d available: %d", start, value, r.Remaining())
	}
	r.position += count
	if n > r.Remaining() {
		return 0, errors.Wrapf(fault.ErrTruncatedInput, "offset: %d count: %d available: %d", start, n, r.Remaining())
	}
	return n, nil
}

// ReadBytes - exactly n raw bytes
//
// the result is a copy and does not alias the buffer
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if nil != err {
		return nil, err
	}
	result := make([]byte, n)
	copy(result, b)
	return result, nil
}

// ReadVarBytes - varint length followed by that many bytes
func (r *Reader) ReadVarBytes() ([]byte, error) {
	n, err := r.ReadCount()
	if nil != err {
		return nil, err
	}
	return r.ReadBytes(n)
}

// ReadString - exactly n bytes as a string
//
// no UTF-8 validation is done, invalid sequences are kept as is
func (r *Reader) ReadString(n int) (string, error) {
	b, err := r.next(n)
	if nil != err {
		return "", err
	}
	return string(b), nil
}

// ReadVarString - varint length followed by that many bytes as a string
func (r *Reader) ReadVarString() (string, error) {
	n, err := r.ReadCount()
	if nil != err {
		return "", err
	}
	return r.ReadString(n)
}

// ReadPointInTime - u32 seconds since the epoch, always UTC
func (r *Reader) ReadPointInTime() (time.Time, error) {
	seconds, err := r.ReadUint32()
	if nil != err {
		return time.Time{}, err
	}
	return time.Unix(int64(seconds), 0).UTC(), nil
}
