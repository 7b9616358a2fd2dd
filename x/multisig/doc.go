/*
Package multisig lets the holders of a core act as the core.

Any holder of the voting asset may propose a call with an OperateMsg.
Proposals are identified by the core and the blake2b hash of the
canonical encoding of the call, so proposing a call that is already
pending adds a vote instead. Every vote weighs the share balance of the
voter at the time it was cast.

A proposal passes when the ayes reach the minimum support of the core,
relative to the current total issuance of the voting asset, and the
required approval, relative to all cast votes. A passed proposal is
removed and its call is executed with the core as the only authorized
condition. The call runs in its own cache so a failing call writes
nothing, but the proposal is consumed either way.
*/
package multisig
