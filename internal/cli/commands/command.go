package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"StaffPortal/internal/config"
)

// ErrUsage возвращается командой при неверных аргументах; диспетчер печатает Usage.
// Может быть обёрнута через %w.
var ErrUsage = errors.New("usage")

// Command — подкоманда CLI.
type Command interface {
	// Name — имя, которое вводит пользователь, например "signin".
	Name() string
	Description() string
	// Usage — строка вида "signin <msnv> <password>".
	Usage() string
	// Run получает аргументы без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. В тестах переназначается.
var Out io.Writer = os.Stdout

// RegisterCmd добавляет команду в реестр; вызывается из init().
// Имена регистрируются в нижнем регистре, как их ищет Dispatch.
func RegisterCmd(cmd Command) {
	registry[strings.ToLower(cmd.Name())] = cmd
}

// Get ищет команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// List возвращает команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает общую справку по всем командам.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("StaffPortal CLI\n\n")
	b.WriteString("Usage:\n  staffcli [--base-url <host:port>] [--storage fs|sqlite] <command> [args]\n\n")
	b.WriteString("Commands:\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	for _, c := range List() {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Usage(), c.Description())
	}
	_ = tw.Flush()
	return b.String()
}
