package client

import "fmt"

// GatewayError is returned by the gateway client when the proxy cannot produce
// a result. Message is safe to show to the user.
type GatewayError struct {
	Message string
	Status  int
	Err     error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when a file cannot be read before it is sent.
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
