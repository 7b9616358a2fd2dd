/*
Package commands holds helpers shared by the daemons built on weave.
*/
package commands

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gogo/protobuf/proto"
	"github.com/invarch/weave/errors"
)

// Example will be written out to a file, .json and .bin
// Filename should have no path and no extension
type Example struct {
	Filename string
	Obj      proto.Message
}

// TestGenCmd writes the JSON and protobuf encodings of every example into
// outdir, so clients can test their codecs against them.
func TestGenCmd(examples []Example, outdir string) error {
	if outdir == "" {
		outdir = "testdata"
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	for _, ex := range examples {
		js, err := json.MarshalIndent(ex.Obj, "", "  ")
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "%s: %s", ex.Filename, err)
		}
		if err := writeFile(outdir, ex.Filename+".json", js); err != nil {
			return err
		}

		pb, err := proto.Marshal(ex.Obj)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "%s: %s", ex.Filename, err)
		}
		if err := writeFile(outdir, ex.Filename+".bin", pb); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(dir, name string, data []byte) error {
	if err := ioutil.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return errors.Wrapf(errors.ErrInput, "write %s: %s", name, err)
	}
	return nil
}
