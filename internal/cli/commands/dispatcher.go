package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"StaffPortal/internal/config"
)

// Коды выхода CLI.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

// Dispatch выполняет команду из args (уже без глобальных флагов) и возвращает код выхода.
// Справка распознаётся только на месте имени команды: аргументы команды передаются ей как есть.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if isHelp(name) { // staffcli help [command]
		return printHelp(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitError
	}
}

func printHelp(rest []string) int {
	if len(rest) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	c, ok := Get(rest[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", rest[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}
	fmt.Fprintf(Out, "Usage: %s\n%s\n", c.Usage(), c.Description())
	return ExitOK
}
