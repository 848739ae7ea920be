package wol

import "errors"

// Send failures. Errors returned by Transmitter.Send wrap one of these
// together with the underlying cause.
var (
	// ErrSocketSetup reports that the datagram socket could not be created or configured.
	ErrSocketSetup = errors.New("socket setup failed")
	// ErrBroadcastPermission reports that the platform refused SO_BROADCAST.
	ErrBroadcastPermission = errors.New("enabling broadcast failed")
	// ErrShortSend reports that the transport accepted fewer bytes than the packet holds.
	ErrShortSend = errors.New("short send")
	// ErrTransport reports any other failure of the send call.
	ErrTransport = errors.New("send failed")
)
