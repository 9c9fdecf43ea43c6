package tui

import (
	"fmt"
	"io"
	"strings"
)

const banner = `
 $$$$$$\  $$\    $$\ $$$$$$$\
$$  __$$\ $$ |   $$ |$$  __$$\
$$ /  \__|$$ |   $$ |$$ |  $$ |
\$$$$$$\  \$$\  $$  |$$$$$$$  |
 \____$$\  \$$\$$  / $$  ____/
$$\   $$ |  \$$$  /  $$ |
\$$$$$$  |   \$  /   $$ |
 \______/     \_/    \__|
`

const appTitle = "Secure Virtual Pets"

type command struct {
	key   string
	title string
}

var anonymousCommands = []command{
	{key: "1", title: "Login"},
	{key: "2", title: "Signup"},
	{key: "quit", title: "close the program"},
}

var userCommands = []command{
	{key: "1", title: "View Pets"},
	{key: "2", title: "View Yards"},
	{key: "3", title: "Make a Pet"},
	{key: "4", title: "Make a Yard"},
	{key: "5", title: "Delete a Pet"},
	{key: "6", title: "Delete a Yard"},
	{key: "7", title: "Feed a Yard"},
	{key: "8", title: "Manage Account"},
	{key: "logout", title: "log out"},
}

var accountCommands = []command{
	{key: "1", title: "Delete Account"},
	{key: "2", title: "Back"},
	{key: "3", title: "View Profile"},
}

func printHeader(w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render(strings.TrimPrefix(banner, "\n")))
	fmt.Fprintln(w, titleStyle.Render(appTitle))
	fmt.Fprintln(w)
}

// printCommands renders numbered commands as "[1] : Login" with the key
// highlighted; word commands are printed as "quit : ...".
func printCommands(w io.Writer, commands []command) {
	fmt.Fprintln(w)
	for _, c := range commands {
		if isNumber(c.key) {
			fmt.Fprintf(w, "    [%s] : %s\n", keyStyle.Render(c.key), c.title)
			continue
		}
		fmt.Fprintf(w, "    %s : %s\n", c.key, helpStyle.Render(c.title))
	}
	fmt.Fprintln(w)
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeCommand trims the answer the way the menus compare it.
func normalizeCommand(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
