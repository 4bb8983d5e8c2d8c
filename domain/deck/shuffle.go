package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/flop-analyzer/domain/poker"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// RandomStream returns a fresh cryptographically secure random stream.
func RandomStream() cipher.Stream {
	return suite.RandomStream()
}

// SeededStream returns a deterministic stream derived from seed, for
// reproducible draws.
func SeededStream(seed []byte) cipher.Stream {
	return suite.XOF(seed)
}

// Draw returns n distinct cards chosen at random from the deck. The deck
// itself is left untouched. A partial Fisher-Yates shuffle is driven by
// stream; a nil stream uses RandomStream.
func (d Deck) Draw(n int, stream cipher.Stream) ([]poker.Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("cannot draw %d cards from a deck of %d", n, len(d.cards))
	}
	if stream == nil {
		stream = RandomStream()
	}

	tmp := d.Cards()
	for i := 0; i < n; i++ {
		j := i + randomIndex(stream, len(tmp)-i)
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp[:n], nil
}

// randomIndex returns a uniform integer in [0, bound) read from stream,
// rejecting values that would bias the modulo.
func randomIndex(stream cipher.Stream, bound int) int {
	if bound <= 1 {
		return 0
	}
	b := uint64(bound)
	limit := ^uint64(0) - (^uint64(0) % b)
	var buf [8]byte
	for {
		clear(buf[:])
		stream.XORKeyStream(buf[:], buf[:])
		v := binary.LittleEndian.Uint64(buf[:])
		if v < limit {
			return int(v % b)
		}
	}
}
