package obfusbit

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackBytes(t *testing.T) {
	ob, err := NewFromFields([]Field{{"id", 10}, {"type", 2}, {"flag", 1}})
	require.NoError(t, err)
	vals := values(map[string]int64{"id": 100, "type": 2, "flag": 1})

	got, err := ob.PackBytes(vals, BigEndian)
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x25}, got)

	got, err = ob.PackBytes(vals, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, []byte{0x25, 0x03}, got)
}

func TestPackBytesWidths(t *testing.T) {
	type args struct {
		bits  int
		value int64
		order ByteOrder
	}
	tests := []struct {
		name string
		args args
		want []byte
	}{
		{"one bit", args{1, 1, BigEndian}, []byte{0x01}},
		{"seven bits", args{7, 0x55, BigEndian}, []byte{0x55}},
		{"eight bits", args{8, 0xFF, BigEndian}, []byte{0xFF}},
		{"eight bits zero", args{8, 0, BigEndian}, []byte{0x00}},
		{"nine bits", args{9, 0x155, BigEndian}, []byte{0x01, 0x55}},
		{"nine bits little", args{9, 0x155, LittleEndian}, []byte{0x55, 0x01}},
		{"twelve bits", args{12, 0xABC, BigEndian}, []byte{0x0A, 0xBC}},
		{"twelve bits little", args{12, 0xABC, LittleEndian}, []byte{0xBC, 0x0A}},
		{"sixteen bits", args{16, 0x1234, BigEndian}, []byte{0x12, 0x34}},
		{"sixteen bits little", args{16, 0x1234, LittleEndian}, []byte{0x34, 0x12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ob, err := NewFromFields([]Field{{"v", tt.args.bits}})
			require.NoError(t, err)
			got, err := ob.PackBytes(values(map[string]int64{"v": tt.args.value}), tt.args.order)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			back, err := ob.UnpackBytes(tt.want, tt.args.order)
			require.NoError(t, err)
			assertValues(t, map[string]int64{"v": tt.args.value}, back)
		})
	}
}

func TestUnpackBytes(t *testing.T) {
	ob, err := NewFromFields([]Field{{"id", 10}, {"type", 2}, {"flag", 1}})
	require.NoError(t, err)

	got, err := ob.UnpackBytes([]byte{0x03, 0x25}, BigEndian)
	require.NoError(t, err)
	assertValues(t, map[string]int64{"id": 100, "type": 2, "flag": 1}, got)

	got, err = ob.UnpackBytes([]byte{0x25, 0x03}, LittleEndian)
	require.NoError(t, err)
	assertValues(t, map[string]int64{"id": 100, "type": 2, "flag": 1}, got)
}

func TestUnpackBytesWrongLength(t *testing.T) {
	ob, err := NewFromFields([]Field{{"id", 10}, {"type", 2}, {"flag", 1}})
	require.NoError(t, err)

	for _, data := range [][]byte{nil, {}, {0x25}, {0x00, 0x03, 0x25}} {
		_, err := ob.UnpackBytes(data, BigEndian)
		require.ErrorIs(t, err, ErrByteLength, "length %d", len(data))
	}
}

func TestUnpackBytesKeepsInputIntact(t *testing.T) {
	ob, err := NewFromFields([]Field{{"id", 10}, {"type", 2}, {"flag", 1}})
	require.NoError(t, err)

	data := []byte{0x25, 0x03}
	_, err = ob.UnpackBytes(data, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, []byte{0x25, 0x03}, data)
}

func TestPackedToBytesRange(t *testing.T) {
	s, err := NewSchema([]Field{{"v", 8}})
	require.NoError(t, err)

	_, err = s.PackedToBytes(big.NewInt(256), BigEndian)
	require.ErrorIs(t, err, ErrPackedRange)

	_, err = s.PackedToBytes(big.NewInt(-1), BigEndian)
	require.ErrorIs(t, err, ErrPackedRange)

	got, err := s.PackedToBytes(big.NewInt(255), BigEndian)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, got)
}

func TestByteOrder(t *testing.T) {
	ob, err := NewFromFields([]Field{{"v", 8}})
	require.NoError(t, err)
	vals := values(map[string]int64{"v": 1})

	_, err = ob.PackBytes(vals, ByteOrder(7))
	require.ErrorIs(t, err, ErrByteOrder)

	_, err = ob.UnpackBytes([]byte{0x01}, ByteOrder(7))
	require.ErrorIs(t, err, ErrByteOrder)

	if got := BigEndian.String(); got != "big" {
		t.Errorf("BigEndian.String(): got %q", got)
	}
	if got := LittleEndian.String(); got != "little" {
		t.Errorf("LittleEndian.String(): got %q", got)
	}
	if got := ByteOrder(7).String(); got != "byteorder(7)" {
		t.Errorf("ByteOrder(7).String(): got %q", got)
	}
}

func TestPackBytesRoundTrip(t *testing.T) {
	ob, err := NewFromFields([]Field{{"a", 3}, {"b", 17}, {"c", 44}})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	bounds := map[string]*big.Int{}
	for _, f := range ob.Schema().Fields() {
		bounds[f.Name] = new(big.Int).Lsh(big.NewInt(1), uint(f.Bits))
	}

	for _, order := range []ByteOrder{BigEndian, LittleEndian} {
		for i := 0; i < 100; i++ {
			vals := map[string]*big.Int{}
			for name, bound := range bounds {
				vals[name] = new(big.Int).Rand(rng, bound)
			}
			data, err := ob.PackBytes(vals, order)
			require.NoError(t, err)
			if len(data) != ob.Schema().ByteLen() {
				t.Fatalf("PackBytes(%v): got %d bytes, want %d", order, len(data), ob.Schema().ByteLen())
			}
			back, err := ob.UnpackBytes(data, order)
			require.NoError(t, err)
			for name, want := range vals {
				if back[name].Cmp(want) != 0 {
					t.Fatalf("field %q via %v: got %v, want %v", name, order, back[name], want)
				}
			}
		}
	}
}
