package commands

import (
	"FileVault/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"

	"FileVault/internal/cli/api"
)

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userAddCmd struct{}

func (userAddCmd) Name() string        { return "user-add" }
func (userAddCmd) Description() string { return "Create a new vault user (requires login)" }
func (userAddCmd) Usage() string       { return "user-add <username> <password>" }

func (userAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	req := userRequest{Username: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(apiURL(cfg, "/api/user/register"), req, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintf(Out, "User %s created\n", args[0])
		return nil
	case http.StatusUnauthorized:
		return errNotLoggedIn
	case http.StatusConflict:
		return fmt.Errorf("user %s already exists", args[0])
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

type passwdCmd struct{}

func (passwdCmd) Name() string        { return "passwd" }
func (passwdCmd) Description() string { return "Set a new password for an existing user" }
func (passwdCmd) Usage() string       { return "passwd <username> <new password>" }

func (passwdCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	req := userRequest{Username: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(apiURL(cfg, "/api/user/password"), req, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Password updated for %s\n", args[0])
		return nil
	case http.StatusUnauthorized:
		return errNotLoggedIn
	case http.StatusNotFound:
		return fmt.Errorf("user %s not found", args[0])
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() {
	RegisterCmd(userAddCmd{})
	RegisterCmd(passwdCmd{})
}
