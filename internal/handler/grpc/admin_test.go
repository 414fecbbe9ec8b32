package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/mock"
	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
	"github.com/MKhiriev/go-exchange-admin/internal/service"
	"github.com/MKhiriev/go-exchange-admin/internal/utils"
	"github.com/MKhiriev/go-exchange-admin/models"
)

type handlerFixture struct {
	handler  *Handler
	auth     *mock.MockAuthService
	exchange *mock.MockExchangeService
	events   *mock.MockEventService
}

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := handlerFixture{
		auth:     mock.NewMockAuthService(ctrl),
		exchange: mock.NewMockExchangeService(ctrl),
		events:   mock.NewMockEventService(ctrl),
	}
	f.handler = NewHandler(&service.Services{
		AuthService:     f.auth,
		ExchangeService: f.exchange,
		EventService:    f.events,
	}, logger.Nop())

	return f
}

// ── Login ──

func TestHandler_Login_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().Login(gomock.Any(), "alice", "secret").
		Return(models.Token{SignedString: "abc123"}, nil)

	resp, err := f.handler.Login(context.Background(), &rpc.LoginRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "abc123", resp.Token)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().Login(gomock.Any(), "alice", "nope").
		Return(models.Token{}, service.ErrInvalidCredentials)

	resp, err := f.handler.Login(context.Background(), &rpc.LoginRequest{Username: "alice", Password: "nope"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials", resp.Message)
	assert.Empty(t, resp.Token)
}

func TestHandler_Login_RateLimited(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().Login(gomock.Any(), "alice", "x").
		Return(models.Token{}, service.ErrTooManyLoginAttempts)

	_, err := f.handler.Login(context.Background(), &rpc.LoginRequest{Username: "alice", Password: "x"})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

// ── Ping / StopEngine ──

func TestHandler_Ping(t *testing.T) {
	f := newHandlerFixture(t)

	resp, err := f.handler.Ping(context.Background(), &rpc.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Message)
}

func TestHandler_StopEngine(t *testing.T) {
	f := newHandlerFixture(t)

	f.exchange.EXPECT().StopEngine(gomock.Any()).Return(nil)

	resp, err := f.handler.StopEngine(context.Background(), &rpc.StopEngineRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

// ── AddUser ──

func TestHandler_AddUser(t *testing.T) {
	tests := []struct {
		name        string
		result      models.CommandResult
		err         error
		wantCode    codes.Code
		wantSuccess bool
	}{
		{
			name:        "success",
			result:      models.CommandResult{UID: 5, ResultCode: models.ResultCodeSuccess, Message: "SUCCESS"},
			wantCode:    codes.OK,
			wantSuccess: true,
		},
		{
			name:     "already exists",
			result:   models.CommandResult{UID: 5, ResultCode: models.ResultCodeUserAlreadyExists, Message: "USER_MGMT_USER_ALREADY_EXISTS"},
			wantCode: codes.OK,
		},
		{
			name:     "engine stopped",
			err:      service.ErrEngineStopped,
			wantCode: codes.FailedPrecondition,
		},
		{
			name:     "invalid uid",
			err:      service.ErrInvalidUID,
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "store failure",
			err:      errors.New("disk full"),
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.exchange.EXPECT().AddUser(gomock.Any(), int64(5)).Return(tt.result, tt.err)

			resp, err := f.handler.AddUser(context.Background(), &rpc.AddUserRequest{UID: 5})
			require.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode != codes.OK {
				return
			}
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.result.Message, resp.Message)
		})
	}
}

func TestHandler_AddUserAsync(t *testing.T) {
	f := newHandlerFixture(t)

	f.exchange.EXPECT().AddUserAsync(gomock.Any(), int64(9)).Return(nil)
	f.exchange.EXPECT().AddUserAsync(gomock.Any(), int64(10)).Return(service.ErrCommandQueueFull)

	_, err := f.handler.AddUserAsync(context.Background(), &rpc.AddUserRequest{UID: 9})
	require.NoError(t, err)

	_, err = f.handler.AddUserAsync(context.Background(), &rpc.AddUserRequest{UID: 10})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

// ── SubscribeAdminEvents ──

type fakeEventStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []models.AdminEvent
}

func (s *fakeEventStream) Context() context.Context {
	return s.ctx
}

func (s *fakeEventStream) Send(event *models.AdminEvent) error {
	s.sent = append(s.sent, *event)
	return nil
}

func TestHandler_SubscribeAdminEvents(t *testing.T) {
	f := newHandlerFixture(t)

	ctx, cancel := context.WithCancel(utils.WithSession(context.Background(), "alice", "s-1"))
	defer cancel()

	f.events.EXPECT().Subscribe(gomock.Any(), int64(0), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, send func(models.AdminEvent) error) error {
			for i := int64(1); i <= 2; i++ {
				if err := send(models.AdminEvent{Index: i}); err != nil {
					return err
				}
			}
			cancel()
			return ctx.Err()
		})

	stream := &fakeEventStream{ctx: ctx}
	err := f.handler.SubscribeAdminEvents(&rpc.SubscribeAdminEventsRequest{}, stream)

	assert.Equal(t, codes.Canceled, status.Code(err))
	require.Len(t, stream.sent, 2)
	assert.Equal(t, int64(2), stream.sent[1].Index)
}

func TestHandler_RejectsMalformedRequestsBeforeServices(t *testing.T) {
	// no expectations: any service call fails the test
	f := newHandlerFixture(t)
	ctx := context.Background()

	resp, err := f.handler.Login(ctx, &rpc.LoginRequest{Username: " ", Password: "secret"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials", resp.Message)

	_, err = f.handler.AddUser(ctx, &rpc.AddUserRequest{UID: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.handler.AddUserAsync(ctx, &rpc.AddUserRequest{UID: -3})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
