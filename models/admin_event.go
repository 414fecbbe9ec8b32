// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ResultCode is the outcome of an administrative command executed by the
// exchange engine.
type ResultCode int32

const (
	// ResultCodeUnrecognized is used for engine outcomes that have no
	// dedicated admin-facing code.
	ResultCodeUnrecognized ResultCode = iota
	// ResultCodeSuccess means the command was applied.
	ResultCodeSuccess
	// ResultCodeUserAlreadyExists means an AddUser command targeted a UID that
	// is already registered.
	ResultCodeUserAlreadyExists
)

// String returns the wire name of the code.
func (c ResultCode) String() string {
	switch c {
	case ResultCodeSuccess:
		return "SUCCESS"
	case ResultCodeUserAlreadyExists:
		return "USER_ALREADY_EXISTS"
	default:
		return "UNRECOGNIZED"
	}
}

// CommandResult describes the outcome of one administrative command.
type CommandResult struct {
	UID        int64      `json:"uid"`
	ResultCode ResultCode `json:"result_code"`
	Message    string     `json:"message"`
}

// AdminEvent is one entry of the server-side admin event log.
//
// Index is assigned by the log on append and grows strictly; clients receive
// events in Index order.
type AdminEvent struct {
	Index         int64          `json:"index"`
	CommandResult *CommandResult `json:"command_result,omitempty"`
}

// String renders the event in a compact single-line form used by logs.
func (e AdminEvent) String() string {
	if e.CommandResult == nil {
		return fmt.Sprintf("#%d <empty>", e.Index)
	}
	return fmt.Sprintf("#%d uid=%d result=%s message=%q",
		e.Index, e.CommandResult.UID, e.CommandResult.ResultCode, e.CommandResult.Message)
}
