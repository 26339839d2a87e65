package flow

import (
	"crypto/sha256"
	"encoding/binary"
)

// Fingerprint returns the SHA-256 digest of the flow's canonical byte
// encoding. Structurally equal flows have equal fingerprints; the digest
// is the coalescing and ordering key during normalization.
func (f *Flow) Fingerprint() [32]byte {
	return sha256.Sum256(f.appendCanon(nil))
}

// appendCanon appends a deterministic, self-delimiting encoding of the
// flow: tag bytes with uvarint length prefixes, splits in stored order.
func (f *Flow) appendCanon(b []byte) []byte {
	b = append(b, 'F')
	b = binary.AppendUvarint(b, uint64(f.Len()))
	if f == nil {
		return b
	}
	for _, it := range f.Items {
		switch v := it.(type) {
		case TokenItem:
			t := v.Token
			b = append(b, 'T', byte(t.Kind))
			b = binary.AppendUvarint(b, uint64(len(t.Text)))
			b = append(b, t.Text...)
			b = append(b, byte(t.Portion.Kind))
			b = binary.AppendUvarint(b, t.Portion.Num)
			b = binary.AppendUvarint(b, t.Portion.Den)
		case SplitItem:
			b = append(b, 'S')
			b = binary.AppendUvarint(b, uint64(v.Splits.Len()))
			for _, sp := range v.Splits.Splits() {
				b = append(b, 'G', byte(sp.Gate.Kind()))
				slots := sp.Gate.Slots().Slots()
				b = binary.AppendUvarint(b, uint64(len(slots)))
				for _, sl := range slots {
					b = append(b, byte(sl))
				}
				b = sp.Flow.appendCanon(b)
			}
		}
	}
	return b
}
