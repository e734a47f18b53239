// Package pke implements SM9 public-key encryption (spec components C and
// F): the ciphertext DER envelope and the KEM + XOR-stream + HMAC-tag
// construction built on top of package kem.
package pke
