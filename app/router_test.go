package app

import (
	"context"
	"testing"

	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/store"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	good := &weavetest.Msg{RoutePath: "test/good"}
	bad := &weavetest.Msg{RoutePath: "test/bad"}
	missing := &weavetest.Msg{RoutePath: "test/missing"}

	counter := &weavetest.Handler{}
	r.Handle(good, counter)
	r.Handle(bad, &weavetest.Handler{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrUnauthorized,
	})

	assert.Panics(t, func() { r.Handle(good, counter) })
	assert.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "l:7"}, counter) })
	assert.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "noslash"}, counter) })

	ctx := context.Background()
	db := store.MemStore()

	_, err := r.Check(ctx, db, &weavetest.Tx{Msg: good})
	assert.Nil(t, err)
	_, err = r.Deliver(ctx, db, &weavetest.Tx{Msg: good})
	assert.Nil(t, err)
	assert.Equal(t, 2, counter.CallCount())

	_, err = r.Deliver(ctx, db, &weavetest.Tx{Msg: bad})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = r.Deliver(ctx, db, &weavetest.Tx{Msg: missing})
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Check(ctx, db, &weavetest.Tx{Msg: missing})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = r.Check(ctx, db, &weavetest.Tx{Err: errors.ErrType})
	assert.IsErr(t, errors.ErrType, err)

	assert.Equal(t, 2, counter.CallCount())
}
