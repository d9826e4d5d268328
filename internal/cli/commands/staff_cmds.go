package commands

import (
	"context"
	"encoding/json"

	"StaffPortal/internal/cli/bootstrap"
	"StaffPortal/internal/config"
)

// rawCall — одна операция ресурса, возвращающая тело ответа.
type rawCall func(ctx context.Context, s *bootstrap.Services) (json.RawMessage, error)

func runAndPrint(ctx context.Context, cfg *config.Config, call rawCall) error {
	return withServices(cfg, func(s *bootstrap.Services) error {
		body, err := call(ctx, s)
		if err != nil {
			return err
		}
		printJSON(body)
		return nil
	})
}

type staffsCmd struct{}

func (staffsCmd) Name() string        { return "staffs" }
func (staffsCmd) Description() string { return "List all staff records" }
func (staffsCmd) Usage() string       { return "staffs" }

func (staffsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return runAndPrint(ctx, cfg, func(ctx context.Context, s *bootstrap.Services) (json.RawMessage, error) {
		return s.Staffs.GetAll(ctx)
	})
}

type staffGetCmd struct{}

func (staffGetCmd) Name() string        { return "staff-get" }
func (staffGetCmd) Description() string { return "Show one staff record" }
func (staffGetCmd) Usage() string       { return "staff-get <id>" }

func (staffGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	return runAndPrint(ctx, cfg, func(ctx context.Context, s *bootstrap.Services) (json.RawMessage, error) {
		return s.Staffs.Get(ctx, args[0])
	})
}

type staffCreateCmd struct{}

func (staffCreateCmd) Name() string        { return "staff-create" }
func (staffCreateCmd) Description() string { return "Create a staff record" }
func (staffCreateCmd) Usage() string       { return "staff-create field=value..." }

func (staffCreateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	fields, err := parseFields(args)
	if err != nil {
		return err
	}
	return runAndPrint(ctx, cfg, func(ctx context.Context, s *bootstrap.Services) (json.RawMessage, error) {
		return s.Staffs.Create(ctx, fields)
	})
}

type staffUpdateCmd struct{}

func (staffUpdateCmd) Name() string        { return "staff-update" }
func (staffUpdateCmd) Description() string { return "Update fields of a staff record" }
func (staffUpdateCmd) Usage() string       { return "staff-update <id> field=value..." }

func (staffUpdateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || args[0] == "" {
		return ErrUsage
	}
	fields, err := parseFields(args[1:])
	if err != nil {
		return err
	}
	return runAndPrint(ctx, cfg, func(ctx context.Context, s *bootstrap.Services) (json.RawMessage, error) {
		return s.Staffs.Update(ctx, args[0], fields)
	})
}

type staffDeleteCmd struct{}

func (staffDeleteCmd) Name() string        { return "staff-delete" }
func (staffDeleteCmd) Description() string { return "Delete one staff record" }
func (staffDeleteCmd) Usage() string       { return "staff-delete <id>" }

func (staffDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	return runAndPrint(ctx, cfg, func(ctx context.Context, s *bootstrap.Services) (json.RawMessage, error) {
		return s.Staffs.Delete(ctx, args[0])
	})
}

type staffDeleteAllCmd struct{}

func (staffDeleteAllCmd) Name() string        { return "staff-delete-all" }
func (staffDeleteAllCmd) Description() string { return "Delete every staff record" }
func (staffDeleteAllCmd) Usage() string       { return "staff-delete-all" }

func (staffDeleteAllCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return runAndPrint(ctx, cfg, func(ctx context.Context, s *bootstrap.Services) (json.RawMessage, error) {
		return s.Staffs.DeleteAll(ctx)
	})
}

func init() {
	RegisterCmd(staffsCmd{})
	RegisterCmd(staffGetCmd{})
	RegisterCmd(staffCreateCmd{})
	RegisterCmd(staffUpdateCmd{})
	RegisterCmd(staffDeleteCmd{})
	RegisterCmd(staffDeleteAllCmd{})
}
