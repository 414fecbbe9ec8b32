package rpc

const (
	// AuthMetadataKey carries the bearer token on every call except Login.
	// The key is the same for unary and streaming calls.
	AuthMetadataKey = "x-auth-token"

	// TraceIDMetadataKey carries a per-call trace id generated by the client.
	TraceIDMetadataKey = "x-trace-id"
)
