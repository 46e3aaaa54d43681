package tui

import (
	"fmt"
	"strings"
)

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// Command names accepted by the prompt.
const (
	CmdOpen     = "open"
	CmdSearch   = "search"
	CmdHome     = "home"
	CmdWishlist = "wishlist"
	CmdHelp     = "help"
	CmdQuit     = "quit"
)

var commandAliases = map[string]string{
	"o":  CmdOpen,
	"s":  CmdSearch,
	"h":  CmdHome,
	"w":  CmdWishlist,
	"wl": CmdWishlist,
	"?":  CmdHelp,
	"q":  CmdQuit,
	"q!": CmdQuit,
}

// ParseCommand parses a command string (without the leading ':').
// Aliases resolve to their full name.
func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if full, ok := commandAliases[cmd.Name]; ok {
		cmd.Name = full
	}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// Validate reports whether the command is known and has the arguments it needs.
func (c Command) Validate() error {
	switch c.Name {
	case CmdOpen:
		if c.Args == "" {
			return fmt.Errorf("usage: :open <listing-id>")
		}
	case CmdSearch, CmdHome, CmdWishlist, CmdHelp, CmdQuit:
	default:
		return fmt.Errorf("unknown command %q", c.Name)
	}
	return nil
}
