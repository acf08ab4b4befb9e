package types

// BlobCapacity bounds variable-length blob fields. FinishFunction carries
// compiled contract bytecode, which can reach 100KB.
const BlobCapacity = 102400

// Blob holds a variable-length byte payload. Bytes beyond Len carry no
// meaning.
type Blob struct {
	Data []byte
}

// NewBlob copies b into a fresh Blob.
func NewBlob(b []byte) Blob {
	return Blob{Data: append([]byte(nil), b...)}
}

func (b Blob) Len() int { return len(b.Data) }

func (b Blob) Bytes() []byte { return b.Data }

func (*Blob) FieldCapacity() int { return BlobCapacity }
func (*Blob) WireSize() int      { return -1 }

func (b *Blob) ReadField(buf []byte, n int) error {
	b.Data = append(b.Data[:0], buf[:n]...)
	return nil
}

func (*Blob) STI() byte { return STIVL }

func (b *Blob) ReadData(buf []byte, n int) error { return b.ReadField(buf, n) }

func (b *Blob) AppendData(dst []byte) []byte { return append(dst, b.Data...) }
