package cryptokeys

const (
	// Aes128KeySize is the size of a plain AES-128 key in bytes.
	Aes128KeySize = 16
	// Aes256KeySize is the size of a plain AES-256 key in bytes.
	Aes256KeySize = 32

	// Aes128NoMacSize is the ciphertext length that selects the
	// Aes128NoMac encrypted-key variant.
	Aes128NoMacSize = 16
	// Aes256NoMacSize is the ciphertext length that selects the
	// Aes256NoMac encrypted-key variant.
	Aes256NoMacSize = 32
	// Aes128WithMacSize is the ciphertext length that selects the
	// Aes128WithMac encrypted-key variant.
	Aes128WithMacSize = 65
)
