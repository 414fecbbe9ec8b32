package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// Operations is the part of a session the command loop dispatches to.
type Operations interface {
	Ping(ctx context.Context) (string, error)
	StopEngine(ctx context.Context) (bool, error)
	AddUser(ctx context.Context, rawUID string) (models.AddUserResult, error)
}

// State of the command loop.
type State int32

const (
	StateAwaitingChoice State = iota
	StateDispatching
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting choice"
	case StateDispatching:
		return "dispatching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// TerminationReason tells why Run returned.
type TerminationReason int

const (
	// ReasonEngineStopped means the gateway accepted a stop engine request.
	ReasonEngineStopped TerminationReason = iota + 1
	// ReasonOperatorExit means the operator chose Exit.
	ReasonOperatorExit
	// ReasonInputClosed means the input reached EOF.
	ReasonInputClosed
	// ReasonCancelled means the loop's context was cancelled.
	ReasonCancelled
)

func (r TerminationReason) String() string {
	switch r {
	case ReasonEngineStopped:
		return "engine stopped"
	case ReasonOperatorExit:
		return "operator exit"
	case ReasonInputClosed:
		return "input closed"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// CommandLoop reads menu choices and dispatches them one at a time.
type CommandLoop struct {
	ops     Operations
	in      *LineReader
	console *Console
	state   atomic.Int32

	logger *logger.Logger
}

// NewCommandLoop builds a loop reading from in and writing to console.
func NewCommandLoop(ops Operations, in *LineReader, console *Console, log *logger.Logger) *CommandLoop {
	return &CommandLoop{ops: ops, in: in, console: console, logger: log}
}

// State returns the current state. It is safe to call from any goroutine.
func (l *CommandLoop) State() State {
	return State(l.state.Load())
}

func (l *CommandLoop) setState(s State) {
	l.state.Store(int32(s))
}

// Run blocks until the loop terminates and returns the reason. Errors of
// individual commands are printed and never end the loop.
func (l *CommandLoop) Run(ctx context.Context) TerminationReason {
	reason := l.run(ctx)
	l.setState(StateTerminated)
	l.logger.Info().Stringer("reason", reason).Msg("command loop terminated")
	return reason
}

func (l *CommandLoop) run(ctx context.Context) TerminationReason {
	for {
		l.setState(StateAwaitingChoice)
		if ctx.Err() != nil {
			return ReasonCancelled
		}

		l.console.Print(renderMenu())
		l.console.Print(menuPrompt)

		line, err := l.in.ReadLine(ctx)
		if err != nil {
			return l.inputEnded(ctx, err)
		}

		l.setState(StateDispatching)
		choice := strings.TrimSpace(line)
		l.logger.Debug().Str("choice", choice).Msg("menu choice")

		switch choice {
		case ChoicePing:
			l.ping(ctx)
		case ChoiceStopEngine:
			if l.stopEngine(ctx) {
				return ReasonEngineStopped
			}
		case ChoiceAddUser:
			if reason, done := l.addUser(ctx); done {
				return reason
			}
		case ChoiceExit:
			l.console.Println("Bye.")
			return ReasonOperatorExit
		default:
			l.console.Error("Invalid choice: " + choice)
		}
	}
}

func (l *CommandLoop) inputEnded(ctx context.Context, err error) TerminationReason {
	if ctx.Err() != nil {
		return ReasonCancelled
	}
	if !errors.Is(err, io.EOF) {
		l.logger.Err(err).Msg("reading operator input")
	}
	l.console.Println("")
	return ReasonInputClosed
}

func (l *CommandLoop) ping(ctx context.Context) {
	msg, err := l.ops.Ping(ctx)
	if err != nil {
		l.console.Error("Ping failed: " + humanizeError(err))
		return
	}
	l.console.Info("Ping: " + msg)
}

func (l *CommandLoop) stopEngine(ctx context.Context) bool {
	accepted, err := l.ops.StopEngine(ctx)
	if err != nil {
		l.console.Error("Stop engine failed: " + humanizeError(err))
		return false
	}
	if !accepted {
		l.console.Error("Stop engine request was not accepted")
		return false
	}

	l.console.Info("Engine stop accepted. Exiting.")
	return true
}

func (l *CommandLoop) addUser(ctx context.Context) (TerminationReason, bool) {
	l.console.Print("User id: ")
	raw, err := l.in.ReadLine(ctx)
	if err != nil {
		return l.inputEnded(ctx, err), true
	}

	res, err := l.ops.AddUser(ctx, raw)
	if err != nil {
		l.console.Error("Add user failed: " + humanizeError(err))
		return 0, false
	}

	switch {
	case res.Async:
		l.console.Info(formatAddUser(res, "Add user queued"))
	case res.Accepted:
		l.console.Info(formatAddUser(res, "User added"))
	default:
		l.console.Error(formatAddUser(res, "User not added"))
	}
	return 0, false
}

func formatAddUser(res models.AddUserResult, prefix string) string {
	line := prefix + " (uid " + formatUID(res.UID) + ")"
	if res.Message != "" {
		line += ": " + res.Message
	}
	return line
}
