/*
Package cores implements the registry of cores.

A core is a keyless account governed by the holders of its shares. Its
address is derived from its numeric id only, see Condition, so anybody
can compute it off chain. There is no private key for that address: calls
are issued on behalf of a core by the multisig extension once enough
share holders approved them. Handlers of privileged messages verify that
origin with Origin.

Cores are never deleted. The registry also keeps the sub assets of every
core, additional share classes with their own balances.
*/
package cores
