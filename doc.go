/*
Package weave defines interfaces used throughout the app, such as: storage,
transactions, handlers, conditions, events etc.

It also contains helpers to work with context and abci. Extensions living in
the x/ directory build on top of these interfaces. Look into this package to
get a brief overview of design decisions made around interfaces and
extension building blocks.
*/
package weave
