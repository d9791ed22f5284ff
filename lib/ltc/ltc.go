// Package ltc carries the litecoin parameters needed to verify litecoin
// signed messages with the lib/btc primitives.
package ltc

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// MessageMagic is the litecoin signed message digest prefix.  LTC signing
// uses a different seed string.
const MessageMagic = "Litecoin Signed Message:\n"

// MainNetParams defines the network parameters for the litecoin main
// network, limited to what address decoding needs.
var MainNetParams = chaincfg.Params{
	Name: "ltc-mainnet",
	Net:  wire.BitcoinNet(0xdbb6c0fb),

	// Address encoding magics
	PubKeyHashAddrID: 48,
	ScriptHashAddrID: 50,
	PrivateKeyID:     176,

	// Human-readable part for Bech32 encoded segwit addresses
	Bech32HRPSegwit: "ltc",

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4},
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e},

	// BIP44 coin type used in the hierarchical deterministic path
	HDCoinType: 2,
}

func init() {
	if er := chaincfg.Register(&MainNetParams); er != nil {
		panic(er)
	}
}

// HashFromMessage is the litecoin twin of btc.HashFromMessage.  The second
// parameter must point to a 32-bytes buffer, where the hash will be stored.
func HashFromMessage(msg []byte, out []byte) {
	b := new(bytes.Buffer)
	wire.WriteVarString(b, 0, MessageMagic)
	wire.WriteVarString(b, 0, string(msg))
	copy(out, chainhash.DoubleHashB(b.Bytes()))
}
