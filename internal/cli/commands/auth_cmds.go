package commands

import (
	"context"
	"errors"
	"fmt"

	"StaffPortal/internal/cli/bootstrap"
	"StaffPortal/internal/cli/service"
	"StaffPortal/internal/config"
)

type signupCmd struct{}

func (signupCmd) Name() string        { return "signup" }
func (signupCmd) Description() string { return "Register a new staff account" }
func (signupCmd) Usage() string       { return "signup <msnv> <password> [field=value...]" }

func (signupCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	fields, err := parseFields(args[2:])
	if err != nil {
		return err
	}
	fields["MSNV"] = args[0]
	fields["Password"] = args[1]

	return withServices(cfg, func(s *bootstrap.Services) error {
		body, err := s.Auth.Register(ctx, fields)
		if err != nil {
			return err
		}
		printJSON(body)
		return nil
	})
}

type signinCmd struct{}

func (signinCmd) Name() string        { return "signin" }
func (signinCmd) Description() string { return "Sign in and remember the access token" }
func (signinCmd) Usage() string       { return "signin <msnv> <password>" }

func (signinCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		body, err := s.Auth.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		printJSON(body)
		return nil
	})
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored access token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		if err := s.Auth.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Logged out")
		return nil
	})
}

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the signed-in staff record" }
func (whoamiCmd) Usage() string       { return "whoami" }

// Run использует Resolve, чтобы показать причину, а не только факт отсутствия пользователя.
func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		res := s.Users.Resolve(ctx)
		switch res.Kind {
		case service.ResolvedOK:
			return printValue(res.User)
		case service.MissingCredential:
			return errors.New("not signed in")
		default:
			return fmt.Errorf("current user unavailable (%s): %w", res.Kind, res.Err)
		}
	})
}

func init() {
	RegisterCmd(signupCmd{})
	RegisterCmd(signinCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(whoamiCmd{})
}
