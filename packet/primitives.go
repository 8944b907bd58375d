package packet

import (
	"bytes"
	"encoding/binary"

	"github.com/taktv6/tflow2/convert"
)

// reader is a cursor over a byte slice that tracks its own offset, so errors
// can report where in the PDU they occurred (spec recommends this; the
// teacher's bytes.Buffer-based decode() loses positional information once a
// read fails).
type reader struct {
	buf []byte
	pos int
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

func (r *reader) remaining() int { return len(r.buf) - r.pos }
func (r *reader) offset() int    { return r.pos }
func (r *reader) rest() []byte   { return r.buf[r.pos:] }

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, truncated(r.pos, n-r.remaining())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) readUint8() (uint8, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) readUint16() (uint16, error) {
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) readUint24() (uint32, error) {
	b, err := r.readBytes(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

func (r *reader) readUint32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return convert.Uint32b(b), nil
}

func (r *reader) readUint64() (uint64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	buf.Write(convert.Uint16Byte(v))
}

func writeUint24(buf *bytes.Buffer, v uint32) {
	buf.Write([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	buf.Write(convert.Uint32Byte(v))
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	buf.Write(b)
}

// readPrefixBytes reads a 1-byte bit-length followed by ceil(bits/8) address
// bytes, zero-extended to width bytes (4 for IPv4, 16 for IPv6).
func readPrefixBytes(r *reader, width int) ([]byte, uint8, error) {
	bitLen, err := r.readUint8()
	if err != nil {
		return nil, 0, err
	}
	if int(bitLen) > width*8 {
		return nil, 0, &Error{Kind: KindBadValue, Reason: "prefix length exceeds address family width", Offset: r.offset()}
	}
	byteLen := (int(bitLen) + 7) / 8
	raw, err := r.readBytes(byteLen)
	if err != nil {
		return nil, 0, err
	}
	out := make([]byte, width)
	copy(out, raw)
	return out, bitLen, nil
}

// writePrefixBytes writes a 1-byte bit-length followed by ceil(bits/8)
// address bytes taken from the front of addr.
func writePrefixBytes(buf *bytes.Buffer, addr []byte, pfxlen uint8) {
	buf.WriteByte(pfxlen)
	byteLen := (int(pfxlen) + 7) / 8
	buf.Write(addr[:byteLen])
}
