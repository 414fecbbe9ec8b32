package rpc

// LoginRequest is sent unauthenticated to obtain a session token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the token on success or a message on rejection.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

type PingRequest struct{}

type PingResponse struct {
	Message string `json:"message"`
}

type StopEngineRequest struct{}

type StopEngineResponse struct {
	Success bool `json:"success"`
}

// AddUserRequest is shared by the synchronous and the fire-and-forget
// AddUser methods.
type AddUserRequest struct {
	UID int64 `json:"uid"`
}

type AddUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Empty is the response of fire-and-forget methods.
type Empty struct{}

// SubscribeAdminEventsRequest opens the admin event stream. Events with an
// index lower than LastEventIndex are skipped; zero means "from the start".
type SubscribeAdminEventsRequest struct {
	LastEventIndex int64 `json:"last_event_index"`
}
