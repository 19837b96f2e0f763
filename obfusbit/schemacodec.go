package obfusbit

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding
// (RFC 8949 section 4.2), so the same schema always serializes to the same
// bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder, accepting standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("obfusbit: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("obfusbit: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalJSON encodes the schema as its ordered field list.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.fields)
}

// UnmarshalJSON rebuilds the schema from an ordered field list, running
// the full NewSchema validation on the decoded fields.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var fields []Field
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	ns, err := NewSchema(fields)
	if err != nil {
		return err
	}
	*s = *ns
	return nil
}

// MarshalCBOR encodes the schema as its ordered field list in Core
// Deterministic Encoding.
func (s *Schema) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(s.fields)
}

// UnmarshalCBOR rebuilds the schema from an ordered field list, running
// the full NewSchema validation on the decoded fields.
func (s *Schema) UnmarshalCBOR(data []byte) error {
	var fields []Field
	if err := decMode.Unmarshal(data, &fields); err != nil {
		return err
	}
	ns, err := NewSchema(fields)
	if err != nil {
		return err
	}
	*s = *ns
	return nil
}
