package btc

// MessageMagic is the prefix string of every signed message digest preimage.
const MessageMagic = "Bitcoin Signed Message:\n"

const (
	// compactSigSize is the decoded size of a signed message signature:
	// one header byte followed by the R and S scalars, 32 bytes each.
	compactSigSize = 65

	// compactSigMagicOffset is added to the recovery code when a compact
	// signature is created, so the header byte of a valid signature is
	// in the range [27, 34].
	compactSigMagicOffset = 27

	// compactSigCompPubKey is added to the header byte of a compact
	// signature when the signing key was in its compressed form.
	compactSigCompPubKey = 4
)
