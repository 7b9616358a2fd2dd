/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

The signers verified by the Decorator are exposed to the handlers
through Authenticate.
*/
package sigs
