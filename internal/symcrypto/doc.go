// Package symcrypto implements the symmetric decryption engine: unwrapping
// an EncryptedKey under a plain Key, and decrypting an opaque ciphertext
// value. Both operations share one AES-CBC core that branches on MAC
// authentication and padding mode. See the teacher's crypto package for
// the AES wrapping conventions this package generalizes from GCM to CBC.
package symcrypto
