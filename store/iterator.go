package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/invarch/weave/errors"
)

// itemIter is a snapshot of the btree items within a range,
// in the order they should be visited.
type itemIter struct {
	items     []item
	ascending bool
}

// ascendBtree collects all items in [start, end) in ascending order.
// nil start or end means an open bound.
func ascendBtree(bt *btree.BTree, start, end []byte) *itemIter {
	res := &itemIter{ascending: true}
	collect := func(i btree.Item) bool {
		res.items = append(res.items, i.(item))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(item{key: end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(item{key: start}, collect)
	default:
		bt.AscendRange(item{key: start}, item{key: end}, collect)
	}
	return res
}

// descendBtree collects all items in [start, end) in descending order.
func descendBtree(bt *btree.BTree, start, end []byte) *itemIter {
	res := &itemIter{ascending: false}
	collect := func(i btree.Item) bool {
		res.items = append(res.items, i.(item))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Descend(collect)
	case start == nil:
		bt.DescendLessOrEqual(below(end), collect)
	case end == nil:
		bt.DescendGreaterThan(below(start), collect)
	default:
		bt.DescendRange(below(end), below(start), collect)
	}
	return res
}

// wrap merges the cached items with the iterator of the backing store.
// Cached items shadow the parent values for the same key.
func (i *itemIter) wrap(parent Iterator) *cachedIterator {
	return &cachedIterator{
		items:     i.items,
		ascending: i.ascending,
		parent:    parent,
	}
}

type cachedIterator struct {
	items     []item
	ascending bool

	parent     Iterator
	parentDone bool
	// peeked value from the parent, valid if hasPeek is set
	hasPeek   bool
	peekKey   []byte
	peekValue []byte
}

var _ Iterator = (*cachedIterator)(nil)

// Next returns the next visible key/value pair, skipping deleted entries.
func (c *cachedIterator) Next() (key, value []byte, err error) {
	for {
		if err := c.peek(); err != nil {
			return nil, nil, err
		}

		if len(c.items) == 0 {
			if !c.hasPeek {
				return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache iterator")
			}
			c.hasPeek = false
			return c.peekKey, c.peekValue, nil
		}

		it := c.items[0]
		if c.hasPeek {
			cmp := bytes.Compare(c.peekKey, it.key)
			if !c.ascending {
				cmp = -cmp
			}
			if cmp < 0 {
				c.hasPeek = false
				return c.peekKey, c.peekValue, nil
			}
			if cmp == 0 {
				// cache overrides the parent
				c.hasPeek = false
			}
		}

		c.items = c.items[1:]
		if it.deleted {
			continue
		}
		return it.key, it.value, nil
	}
}

// peek loads the next parent element if none is buffered.
func (c *cachedIterator) peek() error {
	if c.hasPeek || c.parentDone {
		return nil
	}
	key, value, err := c.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		c.parentDone = true
		return nil
	case err != nil:
		return err
	}
	c.hasPeek = true
	c.peekKey, c.peekValue = key, value
	return nil
}

// Release frees the parent iterator.
func (c *cachedIterator) Release() {
	c.parent.Release()
	c.items = nil
}
