// Package cryptokeys defines the tagged-union key types exchanged between
// the group-key tree and the symmetric decryption engine: a plaintext Key
// (Aes128 or Aes256) and a wrapped EncryptedKey (Aes128NoMac, Aes256NoMac,
// or Aes128WithMac), both selected by byte length rather than an explicit
// tag field.
package cryptokeys
