package sigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/store"
	"github.com/invarch/weave/weavetest"
)

func TestBuildSignBytes(t *testing.T) {
	cases := map[string]struct {
		chainID string
		seq     int64
		wantErr *errors.Error
	}{
		"valid":          {chainID: "test-chain", seq: 5},
		"negative seq":   {chainID: "test-chain", seq: -1, wantErr: ErrInvalidSequence},
		"short chain id": {chainID: "abc", seq: 1, wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			bz, err := BuildSignBytes([]byte("data"), tc.chainID, tc.seq)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Len(t, bz, 64)
			}
		})
	}

	a, err := BuildSignBytes([]byte("data"), "test-chain", 1)
	require.NoError(t, err)
	b, err := BuildSignBytes([]byte("data"), "test-chain", 2)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifySignature(t *testing.T) {
	kv := store.MemStore()
	chainID := "verify-chain"
	priv := weavetest.NewKey()
	other := weavetest.NewKey()
	addr := priv.PublicKey().Address()

	tx := newStdTx([]byte("foobar"))
	bz, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig0, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)
	wrongChain, err := SignTx(priv, tx, "other-chain", 1)
	require.NoError(t, err)

	nonce, err := NextNonce(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), nonce)

	// signature out of order
	_, err = VerifySignature(kv, sig1, bz, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	cond, err := VerifySignature(kv, sig0, bz, chainID)
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey().Condition(), cond)

	nonce, err = NextNonce(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, int64(1), nonce)

	_, err = VerifySignature(kv, wrongChain, bz, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	forged := *sig1
	forged.Pubkey = other.PublicKey()
	_, err = VerifySignature(kv, &forged, bz, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	_, err = VerifySignature(kv, &StdSignature{Signature: sig1.Signature}, bz, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	_, err = VerifySignature(kv, sig1, bz, chainID)
	require.NoError(t, err)
}

func TestVerifyTxSignatures(t *testing.T) {
	kv := store.MemStore()
	chainID := "multi-chain"
	a := weavetest.NewKey()
	b := weavetest.NewKey()

	tx := newStdTx([]byte("both"))
	sa, err := SignTx(a, tx, chainID, 0)
	require.NoError(t, err)
	sb, err := SignTx(b, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*StdSignature{sa, sb}

	signers, err := VerifyTxSignatures(kv, tx, chainID)
	require.NoError(t, err)
	assert.Len(t, signers, 2)
	assert.Equal(t, a.PublicKey().Condition(), signers[0])
	assert.Equal(t, b.PublicKey().Condition(), signers[1])
}

func TestUserDataSequence(t *testing.T) {
	u := &UserData{Pubkey: weavetest.NewKey().PublicKey()}
	require.NoError(t, u.CheckAndIncrementSequence(0))
	assert.Equal(t, int64(1), u.Sequence)
	assert.True(t, ErrInvalidSequence.Is(u.CheckAndIncrementSequence(0)))

	u.Sequence = maxSequenceValue
	assert.True(t, errors.ErrOverflow.Is(u.CheckAndIncrementSequence(maxSequenceValue)))

	assert.True(t, ErrInvalidSequence.Is((&UserData{Sequence: 3}).Validate()))
	assert.NoError(t, (&UserData{}).Validate())
}
