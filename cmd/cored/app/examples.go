package app

import (
	"encoding/hex"
	"strings"

	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/commands"
	"github.com/invarch/weave/crypto"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/cores"
	"github.com/invarch/weave/x/multisig"
	"github.com/invarch/weave/x/shares"
	"github.com/invarch/weave/x/sigs"
)

// we fix the private keys here for deterministic output with the same encoding
// these are not secure at all, but the only point is to check the format,
// which is easier when everything is reproduceable.
var (
	source = makePrivKey("1234567890")
	dst    = makePrivKey("F00BA411").PublicKey().Address()
)

// makePrivKey repeats the string as long as needed to get 64 digits, then
// parses it as hex. It uses this repeated string as a "random" seed
// for the private key.
func makePrivKey(seed string) *crypto.PrivateKey {
	rep := 64/len(seed) + 1
	in := strings.Repeat(seed, rep)[:64]
	bin, err := hex.DecodeString(in)
	if err != nil {
		panic(err)
	}
	return crypto.PrivKeyEd25519FromSeed(bin)
}

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	pub := source.PublicKey()
	addr := pub.Address()
	user := &sigs.UserData{
		Pubkey:   pub,
		Sequence: 17,
	}

	amt := coin.NewCoin(250, 0, "TNKR")
	send := cash.NewSendMsg(addr, dst, amt, "Test payment")

	createCore := &cores.CreateCoreMsg{
		Metadata:         []byte("example core"),
		MinimumSupport:   cores.Percent(1, 2),
		RequiredApproval: cores.All(),
		FeeAsset:         cash.FeeAssetNative,
	}
	unsigned := Tx{CoresCreateCoreMsg: createCore}
	tx := unsigned
	sig, err := sigs.SignTx(source, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	call := &CoreCall{SharesMintMsg: &shares.MintMsg{
		CoreID:      1,
		Destination: dst,
		Amount:      500,
	}}
	callBytes, err := call.Marshal()
	if err != nil {
		panic(err)
	}
	operate := &multisig.OperateMsg{
		CoreID:   1,
		FeeAsset: cash.FeeAssetNative,
		Metadata: []byte("mint for dst"),
		Call:     callBytes,
	}
	operateTx := &Tx{MultisigOperateMsg: operate}

	return []commands.Example{
		{Filename: "priv_key", Obj: source},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "send_msg", Obj: send},
		{Filename: "create_core_msg", Obj: createCore},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
		{Filename: "core_call", Obj: call},
		{Filename: "operate_msg", Obj: operate},
		{Filename: "operate_tx", Obj: operateTx},
	}
}
