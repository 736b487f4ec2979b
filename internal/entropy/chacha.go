package entropy

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

// chachaRekeyBytes bounds how much keystream one key produces before a
// fresh key and nonce are pulled from the seed reader.
const chachaRekeyBytes = 1 << 30

// ChaCha20 expands a short seed into a long keystream. It is much cheaper
// than the system source for multi-megabyte padding.
type ChaCha20 struct {
	mu     sync.Mutex
	seed   io.Reader
	cipher *chacha20.Cipher
	used   int
}

// NewChaCha20 returns a keystream source keyed from seed. The first key is
// drawn lazily on the first Read.
func NewChaCha20(seed io.Reader) *ChaCha20 {
	return &ChaCha20{seed: seed}
}

func (c *ChaCha20) rekey() error {
	var material [chacha20.KeySize + chacha20.NonceSize]byte
	if _, err := io.ReadFull(c.seed, material[:]); err != nil {
		return errors.Wrap(&SourceError{Err: err}, "chacha20 rekey")
	}
	cipher, err := chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
	clear(material[:])
	if err != nil {
		return errors.Wrap(err, "chacha20 rekey")
	}
	c.cipher = cipher
	c.used = 0
	return nil
}

func (c *ChaCha20) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for n < len(p) {
		if c.cipher == nil || c.used >= chachaRekeyBytes {
			if err := c.rekey(); err != nil {
				return n, err
			}
		}
		chunk := min(len(p)-n, chachaRekeyBytes-c.used)
		dst := p[n : n+chunk]
		clear(dst)
		c.cipher.XORKeyStream(dst, dst)
		c.used += chunk
		n += chunk
	}
	return n, nil
}
