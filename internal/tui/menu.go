package tui

import (
	"fmt"
	"strings"
)

// Menu choices as typed by the operator.
const (
	ChoicePing       = "1"
	ChoiceStopEngine = "2"
	ChoiceAddUser    = "3"
	ChoiceExit       = "4"
)

type menuItem struct {
	choice string
	title  string
}

var menuItems = []menuItem{
	{choice: ChoicePing, title: "Ping"},
	{choice: ChoiceStopEngine, title: "Stop engine"},
	{choice: ChoiceAddUser, title: "Add user"},
	{choice: ChoiceExit, title: "Exit"},
}

const menuPrompt = "Choose an option: "

func renderMenu() string {
	var b strings.Builder
	b.WriteString("ID │ Action\n")
	b.WriteString("───┼────────────\n")
	for _, item := range menuItems {
		b.WriteString(fmt.Sprintf("%-2s │ %s\n", item.choice, item.title))
	}

	return renderPage("ADMIN MENU", strings.TrimRight(b.String(), "\n"), "type a number and press enter")
}
