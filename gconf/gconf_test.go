package gconf

import (
	"context"
	"encoding/json"
	"testing"

	proto "github.com/gogo/protobuf/proto"
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/store"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
)

type myconfig struct {
	Owner weave.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/invarch/weave.Address" json:"owner,omitempty"`
	Num   int64         `protobuf:"varint,2,opt,name=num,proto3" json:"num,omitempty"`
	Cn    *coin.Coin    `protobuf:"bytes,3,opt,name=cn,proto3" json:"cn,omitempty"`
}

func (m *myconfig) Reset()                   { *m = myconfig{} }
func (m *myconfig) String() string           { return proto.CompactTextString((*myconfigWire)(m)) }
func (*myconfig) ProtoMessage()              {}
func (m *myconfig) Marshal() ([]byte, error) { return proto.Marshal((*myconfigWire)(m)) }
func (m *myconfig) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*myconfigWire)(m)) }
func (m *myconfig) GetOwner() weave.Address  { return m.Owner }

func (m *myconfig) Validate() error {
	if m.Num < 0 {
		return errors.Wrap(errors.ErrInput, "negative num")
	}
	return m.Owner.Validate()
}

type myconfigWire myconfig

func (m *myconfigWire) Reset()         { *m = myconfigWire{} }
func (m *myconfigWire) String() string { return proto.CompactTextString(m) }
func (*myconfigWire) ProtoMessage()    {}

type myconfigMsg struct {
	weavetest.Msg
	Patch *myconfig
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()
	owner := weavetest.NewCondition().Address()
	conf := &myconfig{Owner: owner, Num: 7, Cn: coin.NewCoinp(1, 5, "IOV")}

	var got myconfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "my", &got))

	assert.Nil(t, Save(db, "my", conf))
	assert.Nil(t, Load(db, "my", &got))
	assert.Equal(t, conf, &got)

	assert.IsErr(t, errors.ErrInput, Save(db, "my", &myconfig{Owner: owner, Num: -1}))
}

func TestInitializer(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	genesis := map[string]interface{}{
		"conf": map[string]interface{}{
			"my": map[string]interface{}{
				"owner": owner,
				"num":   12,
				"cn":    "2.5 KSM",
			},
		},
	}
	raw, err := json.Marshal(genesis)
	assert.Nil(t, err)
	var opts weave.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	init := NewInitializer().Register("my", func() Configuration { return &myconfig{} })
	assert.Nil(t, init.FromGenesis(opts, weave.GenesisParams{}, db))

	var got myconfig
	assert.Nil(t, Load(db, "my", &got))
	assert.Equal(t, int64(12), got.Num)
	assert.Equal(t, coin.NewCoinp(2, 500000000, "KSM"), got.Cn)

	missing := NewInitializer().Register("other", func() Configuration { return &myconfig{} })
	assert.IsErr(t, errors.ErrNotFound, missing.FromGenesis(opts, weave.GenesisParams{}, db))
}

func TestUpdateConfigurationHandler(t *testing.T) {
	owner := weavetest.NewCondition()
	initial := &myconfig{Owner: owner.Address(), Num: 5, Cn: coin.NewCoinp(10, 0, "IOV")}

	cases := map[string]struct {
		init       *myconfig
		patch      *myconfig
		signers    []weave.Condition
		wantErr    *errors.Error
		wantConfig *myconfig
	}{
		"owner can update": {
			init:       initial,
			patch:      &myconfig{Num: 333},
			signers:    []weave.Condition{owner},
			wantConfig: &myconfig{Owner: owner.Address(), Num: 333, Cn: coin.NewCoinp(10, 0, "IOV")},
		},
		"other signer is rejected": {
			init:    initial,
			patch:   &myconfig{Num: 333},
			signers: []weave.Condition{weavetest.NewCondition()},
			wantErr: errors.ErrUnauthorized,
		},
		"missing configuration cannot be updated": {
			patch:   &myconfig{Num: 1},
			signers: []weave.Condition{owner},
			wantErr: errors.ErrNotFound,
		},
		"missing patch": {
			init:    initial,
			signers: []weave.Condition{owner},
			wantErr: errors.ErrState,
		},
		"invalid result is rejected": {
			init:    initial,
			patch:   &myconfig{Num: -4},
			signers: []weave.Condition{owner},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.init != nil {
				assert.Nil(t, Save(db, "my", tc.init))
			}
			auth := &weavetest.Auth{Signers: tc.signers}
			h := NewUpdateConfigurationHandler("my", func() OwnedConfig { return &myconfig{} }, auth)
			tx := &weavetest.Tx{Msg: &myconfigMsg{Patch: tc.patch}}

			_, err := h.Check(context.Background(), db, tx)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			_, err = h.Deliver(context.Background(), db, tx)
			assert.Nil(t, err)

			var got myconfig
			assert.Nil(t, Load(db, "my", &got))
			assert.Equal(t, tc.wantConfig, &got)
		})
	}
}
