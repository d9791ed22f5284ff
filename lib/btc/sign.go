package btc

import (
	"encoding/base64"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// MessageSignature is the decoded form of a base64 signed message signature:
// the recovery metadata from the header byte plus the two signature scalars.
type MessageSignature struct {
	// RecID is the public key recovery id, in the range [0, 3].
	RecID byte

	// Compressed tells whether the signature was made with the compressed
	// form of the public key.  It decides the serialization used when the
	// recovered key is turned back into an address.
	Compressed bool

	// R and S are the signature scalars, each non-zero and smaller than
	// the curve order.
	R, S secp256k1.ModNScalar

	raw [compactSigSize]byte
}

// ParseMessageSignature decodes a base64 encoded signed message signature
// into its envelope form.  The decoded data must be exactly 65 bytes: a
// header byte in the range [27, 34] followed by the R and S scalars.
func ParseMessageSignature(encsig string) (*MessageSignature, error) {
	sd, er := base64.StdEncoding.DecodeString(encsig)
	if er != nil {
		return nil, messageError(ErrSigBase64, "signature is not valid base64: "+er.Error())
	}

	if len(sd) != compactSigSize {
		return nil, messageError(ErrSigLength, "decoded signature is not 65 bytes long")
	}

	if sd[0] < compactSigMagicOffset ||
		sd[0] >= compactSigMagicOffset+2*compactSigCompPubKey {
		return nil, messageError(ErrSigHeader, "signature header byte out of range")
	}

	code := sd[0] - compactSigMagicOffset
	sig := &MessageSignature{
		RecID:      code % compactSigCompPubKey,
		Compressed: code >= compactSigCompPubKey,
	}

	if overflow := sig.R.SetByteSlice(sd[1:33]); overflow || sig.R.IsZero() {
		return nil, messageError(ErrSigScalar, "signature R is zero or >= curve order")
	}
	if overflow := sig.S.SetByteSlice(sd[33:65]); overflow || sig.S.IsZero() {
		return nil, messageError(ErrSigScalar, "signature S is zero or >= curve order")
	}

	copy(sig.raw[:], sd)
	return sig, nil
}

// RecoverPublicKey recovers the public key that produced the signature over
// the given 32-byte message hash.  Failing to recover a valid curve point is
// a legitimate negative outcome for a corrupted signature, reported as an
// ErrRecovery error.
func (sig *MessageSignature) RecoverPublicKey(hash []byte) (*btcec.PublicKey, error) {
	pub, _, er := ecdsa.RecoverCompact(sig.raw[:], hash)
	if er != nil {
		return nil, messageError(ErrRecovery, "cannot recover public key: "+er.Error())
	}
	return pub, nil
}
