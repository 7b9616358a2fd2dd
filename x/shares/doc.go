/*
Package shares implements the share ledger of cores.

Every core has a main share and any number of sub assets, each with its
own balances and total issuance. Share balances are the voting weight used
by the multisig extension. Balances are kept in the "shares" bucket under
core id, sub asset id and holder address, so all holders of an asset can
be listed with a single prefix query.
*/
package shares
