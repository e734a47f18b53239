// Package sign implements SM9 signing and verification (spec components B
// and D): the DER signature envelope, the streaming H2 context shared by
// both directions, and algorithms A1-A6 / B1-B9.
//
// Key generation lives out of scope per the specification; this package
// only consumes an already-derived (ds, Ppubs) pair or a Ppubs alone.
package sign
