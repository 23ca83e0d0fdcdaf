package regmap

import "fmt"

// Bitfield is the decoded form of one register: bit name -> 0 or 1.
type Bitfield map[string]uint8

// Decoded maps register names to their bitfields.
type Decoded map[string]Bitfield

// DecodeValue expands a raw register value into its named bits.
func DecodeValue(r Register, v uint64) Bitfield {
	bf := make(Bitfield, len(r.Bits))
	for name, pos := range r.Bits {
		bf[name] = uint8((v >> pos) & 1)
	}
	return bf
}

// Decode expands every register of d that t knows about. Keys absent from
// the table are dropped; registers without bit definitions decode to an
// empty Bitfield.
func Decode(d *Dump, t *Table) (Decoded, error) {
	out := make(Decoded)
	for _, e := range d.entries {
		r, ok := t.ByID(e.Key)
		if !ok {
			continue
		}
		v, err := ParseHex(e.Value)
		if err != nil {
			return nil, fmt.Errorf("regmap: register %s (%s): %w", r.Name, e.Key, err)
		}
		out[r.Name] = DecodeValue(r, v)
	}
	return out, nil
}

// WithBit returns raw with the bit at pos set to v.
func WithBit(raw uint64, pos uint, v uint8) (uint64, error) {
	if pos > MaxBit {
		return 0, fmt.Errorf("regmap: bit offset %d exceeds %d", pos, MaxBit)
	}
	switch v {
	case 1:
		return raw | (1 << pos), nil
	case 0:
		return raw &^ (1 << pos), nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrBadBitValue, v)
	}
}
