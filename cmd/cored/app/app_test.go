package app_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/invarch/weave"
	weaveApp "github.com/invarch/weave/app"
	cored "github.com/invarch/weave/cmd/cored/app"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/crypto"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/cores"
	"github.com/invarch/weave/x/multisig"
	"github.com/invarch/weave/x/shares"
	"github.com/invarch/weave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "cored-test-chain"

const appState = `
  {
    "cash": [
      {"address": "%s", "coins": ["1000 TNKR", "50 KSM"]}
    ],
    "conf": {
      "cores": {
        "max_metadata": 64,
        "core_seed_balance": 1000000,
        "creation_fee": "10 TNKR",
        "relay_creation_fee": "2 KSM",
        "fee_collector": "%s"
      }
    }
  }
`

type appFixture struct {
	app       weaveApp.BaseApp
	alice     *crypto.PrivateKey
	collector weave.Address
	height    int64
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	f := &appFixture{
		alice:     crypto.GenPrivKeyEd25519(),
		collector: crypto.GenPrivKeyEd25519().PublicKey().Address(),
	}
	myApp, err := cored.Application("cored-test", cored.Stack(), cored.TxDecoder, "", true)
	assert.Nil(t, err)
	myApp.WithInit(cored.Initializers())
	myApp.WithLogger(log.NewNopLogger())

	state := fmt.Sprintf(appState, f.alice.PublicKey().Address(), f.collector)
	myApp.InitChain(abci.RequestInitChain{AppStateBytes: []byte(state), ChainId: chainID})
	f.app = myApp
	f.commit(t)
	return f
}

func (f *appFixture) commit(t *testing.T) {
	t.Helper()
	f.height++
	f.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: f.height, Time: time.Now()}})
	f.app.EndBlock(abci.RequestEndBlock{})
	cres := f.app.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
}

// signAndDeliver signs the message as the signer and runs it through
// check, deliver and commit of a new block.
func (f *appFixture) signAndDeliver(t *testing.T, signer *crypto.PrivateKey, nonce int64, msg weave.Msg) abci.ResponseDeliverTx {
	t.Helper()
	var tx cored.Tx
	assert.Nil(t, tx.SetMsg(msg))
	sig, err := sigs.SignTx(signer, &tx, chainID, nonce)
	assert.Nil(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	raw, err := tx.Marshal()
	assert.Nil(t, err)

	f.height++
	f.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: f.height, Time: time.Now()}})
	chres := f.app.CheckTx(raw)
	assert.Equal(t, uint32(0), chres.Code)
	dres := f.app.DeliverTx(raw)
	f.app.EndBlock(abci.RequestEndBlock{})
	f.app.Commit()
	return dres
}

func (f *appFixture) query(t *testing.T, path string, key []byte, dest weave.Persistent) {
	t.Helper()
	res := f.app.Query(abci.RequestQuery{Path: path, Data: key})
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)
	assert.Nil(t, weaveApp.UnmarshalOneResult(res.Value, dest))
}

func TestCoreLifecycle(t *testing.T) {
	f := newAppFixture(t)
	alice := f.alice.PublicKey().Address()
	bob := crypto.GenPrivKeyEd25519().PublicKey().Address()

	dres := f.signAndDeliver(t, f.alice, 0, &cores.CreateCoreMsg{
		Metadata:         []byte("first core"),
		MinimumSupport:   cores.Percent(1, 2),
		RequiredApproval: cores.Percent(1, 2),
		FeeAsset:         cash.FeeAssetNative,
	})
	assert.Equal(t, uint32(0), dres.Code)
	assert.Equal(t, cores.EncodeID(0), dres.Data)

	var core cores.Core
	f.query(t, "/cores", cores.EncodeID(0), &core)
	assert.Equal(t, true, core.Frozen)
	assert.Equal(t, cores.Account(0), core.Account)

	var fees cash.Set
	f.query(t, "/wallets", f.collector, &fees)
	assert.Equal(t, coin.Coins{coin.NewCoinp(10, 0, "TNKR")}, fees.Coins)

	var left cash.Set
	f.query(t, "/wallets", alice, &left)
	assert.Equal(t, coin.Coins{coin.NewCoinp(50, 0, "KSM"), coin.NewCoinp(990, 0, "TNKR")}, left.Coins)

	// The single holder passes every proposal on its own.
	call, err := cored.EncodeCall(&shares.MintMsg{CoreID: 0, Destination: bob, Amount: 500})
	assert.Nil(t, err)
	dres = f.signAndDeliver(t, f.alice, 1, &multisig.OperateMsg{
		CoreID:   0,
		FeeAsset: cash.FeeAssetNative,
		Call:     call,
	})
	assert.Equal(t, uint32(0), dres.Code)

	var balance shares.Balance
	f.query(t, "/shares/balances", append(shares.MainAsset(0).Key(), bob...), &balance)
	assert.Equal(t, uint64(500), balance.Amount)

	var issuance shares.Issuance
	f.query(t, "/shares/issuance", shares.MainAsset(0).Key(), &issuance)
	assert.Equal(t, uint64(1000500), issuance.Amount)

	var user sigs.UserData
	f.query(t, "/auth", alice, &user)
	assert.Equal(t, int64(2), user.Sequence)
}

func TestCreateCoreWithRelayFee(t *testing.T) {
	f := newAppFixture(t)

	dres := f.signAndDeliver(t, f.alice, 0, &cores.CreateCoreMsg{
		MinimumSupport:   cores.All(),
		RequiredApproval: cores.All(),
		FeeAsset:         cash.FeeAssetRelay,
	})
	assert.Equal(t, uint32(0), dres.Code)

	var fees cash.Set
	f.query(t, "/wallets", f.collector, &fees)
	assert.Equal(t, coin.Coins{coin.NewCoinp(2, 0, "KSM")}, fees.Coins)
}

func TestCoreCallsAreRestricted(t *testing.T) {
	_, err := cored.NewCoreCall(&cores.CreateCoreMsg{})
	assert.IsErr(t, errors.ErrType, err)

	call, err := cored.NewCoreCall(&cores.RemarkMsg{CoreID: 3, Remark: []byte("hi")})
	assert.Nil(t, err)
	raw, err := call.Marshal()
	assert.Nil(t, err)

	decoded, err := cored.DecodeCall(raw)
	assert.Nil(t, err)
	msg, err := decoded.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, &cores.RemarkMsg{CoreID: 3, Remark: []byte("hi")}, msg)

	who := weavetest.RandomAddr(t)
	raw, err = cored.EncodeCall(&shares.SetBalanceMsg{CoreID: 3, SubAssetID: 1, Who: who, Amount: 7})
	assert.Nil(t, err)
	decoded, err = cored.DecodeCall(raw)
	assert.Nil(t, err)
	msg, err = decoded.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, &shares.SetBalanceMsg{CoreID: 3, SubAssetID: 1, Who: who, Amount: 7}, msg)
}
