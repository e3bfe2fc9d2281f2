package encryption

import "github.com/awnumar/memguard"

// wipe zeroes sensitive buffers (derived keys, password and plaintext copies).
func wipe(bufs ...[]byte) {
	for _, b := range bufs {
		memguard.WipeBytes(b)
	}
}
