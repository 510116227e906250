package suid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf16"
)

// stream mirrors the subset of java.io.DataOutputStream used by the
// serialization hash. The first failing write sticks.
type stream struct {
	buf bytes.Buffer
	err error
}

// writeInt appends v as 4 big-endian bytes.
func (s *stream) writeInt(v int32) {
	s.buf.Write(binary.BigEndian.AppendUint32(nil, uint32(v)))
}

// writeUTF appends str in modified UTF-8 with a 2-byte length prefix.
func (s *stream) writeUTF(str string) {
	if s.err != nil {
		return
	}

	units := utf16.Encode([]rune(str))

	size := 0
	for _, c := range units {
		size += encodedLen(c)
	}

	if size > math.MaxUint16 {
		s.err = fmt.Errorf("string of %d encoded bytes exceeds %d", size, math.MaxUint16)
		return
	}

	s.buf.Write(binary.BigEndian.AppendUint16(nil, uint16(size)))

	for _, c := range units {
		switch encodedLen(c) {
		case 1:
			s.buf.WriteByte(byte(c))
		case 2:
			s.buf.WriteByte(byte(0xC0 | (c>>6)&0x1F))
			s.buf.WriteByte(byte(0x80 | c&0x3F))
		default:
			s.buf.WriteByte(byte(0xE0 | (c>>12)&0x0F))
			s.buf.WriteByte(byte(0x80 | (c>>6)&0x3F))
			s.buf.WriteByte(byte(0x80 | c&0x3F))
		}
	}
}

// encodedLen is the modified UTF-8 length of one UTF-16 code unit. NUL
// takes two bytes and surrogates are encoded individually.
func encodedLen(c uint16) int {
	switch {
	case c != 0 && c <= 0x007F:
		return 1
	case c <= 0x07FF:
		return 2
	default:
		return 3
	}
}

func (s *stream) bytes() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.buf.Bytes(), nil
}
