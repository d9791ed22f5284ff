package btc

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// HashFromMessage is used to sign and verify messages using the Bitcoin
// standard.  The digest preimage is the magic prefix and the message, each
// preceded by its compact-size encoded length, and the digest is the double
// SHA256 of that buffer.  The second parameter must point to a 32-bytes
// buffer, where the hash will be stored.
func HashFromMessage(msg []byte, out []byte) {
	b := new(bytes.Buffer)
	wire.WriteVarString(b, 0, MessageMagic)
	wire.WriteVarString(b, 0, string(msg))
	copy(out, chainhash.DoubleHashB(b.Bytes()))
}
