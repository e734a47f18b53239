// Package exchange implements the SM9 two-round authenticated key exchange
// (spec component G) between an initiator A and a responder B, plus the
// optional key-confirmation tags from spec §4.H (Open Question (b),
// resolved: implemented with domain prefixes 0x82 for B->A and 0x83 for
// A->B, computed but never required — callers that don't want confirmation
// simply don't call ConfirmB/ConfirmA).
package exchange
