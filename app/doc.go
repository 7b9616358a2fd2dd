/*
Package app contains the building blocks of an abci application: a
router dispatching messages by path, a decorator chain, the StoreApp
handling state, queries and genesis, and the BaseApp adding transaction
processing on top.

An application links these together with its own transaction decoder
and the extensions it uses, see cmd/cored/app.
*/
package app
