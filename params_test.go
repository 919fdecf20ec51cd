package tiac_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/KereMath/tiac"
	"github.com/stretchr/testify/require"
)

func TestParamsWriteToAndLoadRoundTrip(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = params.WriteTo(&buf)
	require.NoError(t, err)

	loaded, err := tiac.Load(&buf)
	require.NoError(t, err)

	require.Equal(t, params.P, loaded.P)
	require.True(t, params.G1.Equals(loaded.G1))
	require.True(t, params.H1.Equals(loaded.H1))
	require.True(t, params.G2.Equals(loaded.G2))
}

func TestScalarEncodeDecodeRoundTrip(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	x := new(big.Int).Sub(params.P, big.NewInt(1))
	buf := params.EncodeScalar(x)

	got, err := params.DecodeScalar(buf)
	require.NoError(t, err)
	require.Equal(t, x, got)
}

func TestDecodeScalarRejectsWrongLength(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	_, err = params.DecodeScalar([]byte{0x01, 0x02})
	require.ErrorIs(t, err, tiac.ErrBadEncoding)
}

func TestDecodeG1HexRejectsWrongLength(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	full := tiac.EncodeG1Hex(params.G1)
	truncated := full[:len(full)-2]

	_, err = params.DecodeG1Hex(truncated)
	require.ErrorIs(t, err, tiac.ErrBadEncoding)
}

func TestDecodeG2HexRejectsWrongLength(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	full := tiac.EncodeG2Hex(params.G2)
	padded := full + "00"

	_, err = params.DecodeG2Hex(padded)
	require.ErrorIs(t, err, tiac.ErrBadEncoding)
}

func TestCreateDIDSamplesFreshXPerCall(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	d1, err := tiac.CreateDID(params, "voter-001")
	require.NoError(t, err)
	d2, err := tiac.CreateDID(params, "voter-001")
	require.NoError(t, err)

	// Different random x per call, so the DID strings should differ with
	// overwhelming probability even for the same userID.
	require.NotEqual(t, d1.Did, d2.Did)

	x, err := d1.Int(params)
	require.NoError(t, err)
	require.NotNil(t, x)
}

func TestHashZrIsDeterministic(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	a := tiac.HashZr(params, []byte("one"), []byte("two"))
	b := tiac.HashZr(params, []byte("one"), []byte("two"))
	require.Equal(t, a, b)

	c := tiac.HashZr(params, []byte("one"), []byte("three"))
	require.NotEqual(t, a, c)
}
