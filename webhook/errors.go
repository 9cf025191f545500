package webhook

import "errors"

// The two failure classes are deliberately disjoint: ErrSignatureInvalid
// means the payload is not authenticated and must be discarded untrusted,
// while ErrMalformedPayload means the payload is authentic but unparsable.
// Callers must be able to tell "not from the service" apart from "from the
// service but corrupt".
var (
	ErrSignatureInvalid = errors.New("webhook: signature verification failed")
	ErrMalformedPayload = errors.New("webhook: malformed payload")
)
