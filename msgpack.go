package bigint

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
	_ msgpack.CustomEncoder = Rat{}
	_ msgpack.CustomDecoder = (*Rat)(nil)
)

// EncodeMsgpack implements [msgpack.CustomEncoder] interface.
// The integer is encoded as a msgpack string holding [Int.String].
func (d Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(d.String())
}

// DecodeMsgpack implements [msgpack.CustomDecoder] interface.
// Also see method [Parse].
func (d *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	*d, err = Parse(s)
	return err
}

// EncodeMsgpack implements [msgpack.CustomEncoder] interface.
// The rational is encoded as a msgpack string holding [Rat.String].
func (r Rat) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(r.String())
}

// DecodeMsgpack implements [msgpack.CustomDecoder] interface.
// Also see method [ParseRat].
func (r *Rat) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	*r, err = ParseRat(s)
	return err
}
