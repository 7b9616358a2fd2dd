package multisig

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
	"golang.org/x/crypto/blake2b"
)

const callHashLength = blake2b.Size256

// CallHash returns the identifier of a call, the blake2b-256 hash of its
// canonical encoding.
func CallHash(call []byte) []byte {
	h := blake2b.Sum256(call)
	return h[:]
}

// ProposalKey returns the store key of the proposal of a call on the
// core.
func ProposalKey(coreID uint64, callHash []byte) []byte {
	key := make([]byte, 8, 8+len(callHash))
	binary.BigEndian.PutUint64(key, coreID)
	return append(key, callHash...)
}

// NewProposalBucket returns the bucket of all pending proposals.
func NewProposalBucket() orm.ModelBucket {
	return orm.NewModelBucket("proposal", &Proposal{})
}

var _ orm.Model = (*Proposal)(nil)

func (p *Proposal) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "CallHash", validateCallHash(p.CallHash))
	if len(p.Call) == 0 {
		errs = errors.AppendField(errs, "Call", errors.ErrEmpty)
	}
	if len(p.Voters) == 0 {
		errs = errors.AppendField(errs, "Voters", errors.ErrEmpty)
	}

	var yes, no uint64
	for i, v := range p.Voters {
		if err := v.Address.Validate(); err != nil {
			errs = errors.Append(errs, errors.Field(errors.FieldPath("Voters", i, "Address"), err, ""))
			continue
		}
		if i > 0 && bytes.Compare(p.Voters[i-1].Address, v.Address) >= 0 {
			errs = errors.Append(errs, errors.Field(errors.FieldPath("Voters", i), errors.ErrInput, "voters not sorted"))
		}
		if v.Reject {
			no += v.Weight
		} else {
			yes += v.Weight
		}
	}
	if yes != p.YesWeight || no != p.NoWeight {
		errs = errors.Append(errs, errors.Wrap(errors.ErrState, "weights do not match the votes"))
	}
	return errs
}

func (p *Proposal) Copy() orm.Model {
	cpy := *p
	cpy.Voters = make([]*Vote, len(p.Voters))
	for i, v := range p.Voters {
		vote := *v
		cpy.Voters[i] = &vote
	}
	return &cpy
}

// findVoter returns the position of the address in the sorted voter
// list and whether it is present.
func (p *Proposal) findVoter(addr weave.Address) (int, bool) {
	i := sort.Search(len(p.Voters), func(i int) bool {
		return bytes.Compare(p.Voters[i].Address, addr) >= 0
	})
	return i, i < len(p.Voters) && p.Voters[i].Address.Equals(addr)
}

// addVote records the vote and its weight. The voter must not have voted
// yet.
func (p *Proposal) addVote(v *Vote) error {
	i, found := p.findVoter(v.Address)
	if found {
		return errors.Wrapf(ErrAlreadyVoted, "%s", v.Address)
	}
	var ok bool
	if v.Reject {
		p.NoWeight, ok = add(p.NoWeight, v.Weight)
	} else {
		p.YesWeight, ok = add(p.YesWeight, v.Weight)
	}
	if !ok {
		return errors.Wrap(errors.ErrOverflow, "vote weight")
	}
	p.Voters = append(p.Voters, nil)
	copy(p.Voters[i+1:], p.Voters[i:])
	p.Voters[i] = v
	return nil
}

// removeVote removes the vote of the address and subtracts exactly the
// weight it was cast with.
func (p *Proposal) removeVote(addr weave.Address) (*Vote, error) {
	i, found := p.findVoter(addr)
	if !found {
		return nil, errors.Wrapf(ErrNotVoter, "%s", addr)
	}
	v := p.Voters[i]
	if v.Reject {
		p.NoWeight -= v.Weight
	} else {
		p.YesWeight -= v.Weight
	}
	p.Voters = append(p.Voters[:i], p.Voters[i+1:]...)
	return v, nil
}

func add(a, b uint64) (uint64, bool) {
	c := a + b
	return c, c >= a
}
