package weave

import (
	"reflect"

	"github.com/invarch/weave/errors"
)

// Msg is message for the blockchain to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the path of the message. Path is used to route
	// a message to the handler and must be unique per message type.
	// All extension message paths use the "<ext>/<msg>" format.
	Path() string

	// Validate performs a sanity checks on this message. It returns an
	// error if at least one test does not pass and message is considered
	// invalid.
	Validate() error
}

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data
// and errors should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represent the data sent from the user to the chain.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pay fees, or handle replay attacks.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// ExtractMsgFromSum will find the single message set on a protobuf sum
// structure. A sum structure is a pointer to a struct whose exported
// fields are all pointers to messages and where exactly one of them is
// set. This is how both the transaction and the governed call keep their
// closed set of messages.
func ExtractMsgFromSum(sum interface{}) (Msg, error) {
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "message container is <nil>")
	}
	pval := reflect.ValueOf(sum)
	if pval.Kind() != reflect.Ptr || pval.Type().Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container value: %T", sum)
	}
	if pval.IsNil() {
		return nil, errors.Wrap(errors.ErrState, "message container is <nil>")
	}

	val := pval.Elem()
	var found Msg
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.Kind() != reflect.Ptr || !field.CanInterface() {
			continue
		}
		if field.IsNil() {
			continue
		}
		msg, ok := field.Interface().(Msg)
		if !ok {
			return nil, errors.Wrapf(errors.ErrType, "invalid message: %T", field.Interface())
		}
		if found != nil {
			return nil, errors.Wrap(errors.ErrInput, "more than one message set")
		}
		found = msg
	}
	if found == nil {
		return nil, errors.Wrap(errors.ErrState, "message is <nil>")
	}
	return found, nil
}

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "nil message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	// Destination must be a pointer to the same type as the message.
	msgVal := reflect.ValueOf(msg)
	destVal := reflect.ValueOf(destination)
	if !destVal.IsValid() || destVal.Kind() != reflect.Ptr || destVal.IsNil() {
		return errors.Wrapf(errors.ErrType, "invalid destination: %T", destination)
	}
	if destVal.Type() != msgVal.Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	destVal.Elem().Set(msgVal.Elem())
	return nil
}
