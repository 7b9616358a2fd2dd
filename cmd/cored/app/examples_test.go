package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/invarch/weave/commands"
	"github.com/invarch/weave/weavetest/assert"
)

func TestExamplesRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "cored-testgen")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	examples := Examples()
	assert.Nil(t, commands.TestGenCmd(examples, dir))

	raw, err := ioutil.ReadFile(filepath.Join(dir, "signed_tx.bin"))
	assert.Nil(t, err)
	tx, err := TxDecoder(raw)
	assert.Nil(t, err)
	msg, err := tx.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, "cores/create", msg.Path())
	assert.Equal(t, 1, len(tx.(*Tx).GetSignatures()))

	raw, err = ioutil.ReadFile(filepath.Join(dir, "core_call.bin"))
	assert.Nil(t, err)
	call, err := DecodeCall(raw)
	assert.Nil(t, err)
	msg, err = call.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, "shares/mint", msg.Path())
}
