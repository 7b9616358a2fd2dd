/*
Package cash provides the fee asset ledger.

Every address owns a wallet (a Set of coins). Wallets can be funded at
genesis and moved around with SendMsg. Creating a core withdraws a fee
from the creator's wallet in one of the two FeeAsset currencies. The
withdrawn NegativeImbalance is handed to a FeeHandler, which either
credits a collector or burns it.
*/
package cash
