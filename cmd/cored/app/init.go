package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/crypto"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/cores"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultTicker is the native token of a development chain.
const DefaultTicker = "TNKR"

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The account also owns the cores
// configuration and collects the creation fees.
//
// You can set the ticker and the address of the account as arguments.
// If no address is given, a new key is generated and printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("invalid ticker %s", ticker)
		}
	}

	var addr weave.Address
	if len(args) > 1 {
		var err error
		addr, err = weave.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz
		fmt.Println(keys)
	}

	fee := coin.NewCoin(10, 0, ticker)
	state := struct {
		Cash []cash.GenesisAccount `json:"cash"`
		Conf struct {
			Cores *cores.Configuration `json:"cores"`
		} `json:"conf"`
		Cores []cores.GenesisCore `json:"cores"`
	}{
		Cash: []cash.GenesisAccount{
			{Address: addr, Coins: coin.Coins{coin.NewCoinp(123456789, 0, ticker)}},
		},
		Cores: []cores.GenesisCore{},
	}
	state.Conf.Cores = &cores.Configuration{
		Owner:           addr,
		MaxMetadata:     256,
		CoreSeedBalance: 1000000,
		CreationFee:     &fee,
		FeeCollector:    addr,
	}
	return json.MarshalIndent(state, "", "  ")
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "cored.db")
	}

	application, err := Application("cored", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
