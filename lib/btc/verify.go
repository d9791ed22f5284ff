// Package btc verifies Bitcoin signed messages: it decodes the base64
// signature envelope, recovers the signing public key from the signature
// and the message digest, rebuilds the address that key would produce in
// the claimed address's encoding and compares the two.
package btc

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// VerifyMessageHash checks whether the base64 encoded signature was made
// over the given 32-byte message hash by the owner of the claimed address.
// It returns false with a nil error for a well-formed signature that was
// simply made by somebody else, and an error describing the failing stage
// for malformed input.
func VerifyMessageHash(ad btcutil.Address, net *chaincfg.Params, hash []byte,
	encsig string) (bool, error) {

	sig, er := ParseMessageSignature(encsig)
	if er != nil {
		return false, er
	}

	pub, er := sig.RecoverPublicKey(hash)
	if er != nil {
		return false, er
	}

	sa, er := DeriveAddr(pub, sig.Compressed, ad, net)
	if er != nil {
		return false, er
	}

	return sa.EncodeAddress() == ad.EncodeAddress(), nil
}

// VerifyMessage checks whether the base64 encoded signature was made over
// the message by the owner of the claimed bitcoin address.  Use DecodeAddr,
// HashFromMessage and VerifyMessageHash directly to verify many signatures
// over one message without rehashing it, or to cover other networks.
func VerifyMessage(addr string, msg []byte, encsig string) (bool, error) {
	ad, net, er := DecodeAddr(addr)
	if er != nil {
		return false, er
	}

	var hash [32]byte
	HashFromMessage(msg, hash[:])

	return VerifyMessageHash(ad, net, hash[:], encsig)
}
