package btc

// ErrorKind identifies the stage of message verification that failed.
// It has full support for errors.Is.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrSigBase64 indicates that a signature string is not valid base64.
	ErrSigBase64 = ErrorKind("ErrSigBase64")

	// ErrSigLength indicates that a decoded signature is not exactly
	// 65 bytes long.
	ErrSigLength = ErrorKind("ErrSigLength")

	// ErrSigHeader indicates that the header byte of a decoded signature
	// is outside the range [27, 34].
	ErrSigHeader = ErrorKind("ErrSigHeader")

	// ErrSigScalar indicates that the R or S component of a decoded
	// signature is zero or not smaller than the curve order.
	ErrSigScalar = ErrorKind("ErrSigScalar")

	// ErrRecovery indicates that no valid public key could be recovered
	// from a signature and message hash for the claimed recovery id.
	ErrRecovery = ErrorKind("ErrRecovery")

	// ErrAddress indicates that an address string could not be decoded
	// into one of the supported address types.
	ErrAddress = ErrorKind("ErrAddress")

	// ErrCompression indicates that a witness or P2SH-wrapped witness
	// address was claimed, but the signature was made with an
	// uncompressed key.
	ErrCompression = ErrorKind("ErrCompression")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a message verification error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the failure by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// messageError creates an Error given a set of arguments.
func messageError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
