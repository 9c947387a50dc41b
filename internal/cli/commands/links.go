package commands

import (
	"FileVault/internal/config"
	"FileVault/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"FileVault/internal/cli/api"
)

type linkRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type linksCmd struct{}

func (linksCmd) Name() string        { return "links" }
func (linksCmd) Description() string { return "List saved external links" }
func (linksCmd) Usage() string       { return "links" }

func (linksCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.Do(http.MethodGet, apiURL(cfg, "/api/links"), api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return errNotLoggedIn
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var links []model.Link
	if err := json.Unmarshal(body, &links); err != nil {
		return err
	}
	if len(links) == 0 {
		fmt.Fprintln(Out, "Нет ссылок")
		return nil
	}
	for _, l := range links {
		fmt.Fprintf(Out, "- %d  %s  %s  added=%s\n",
			l.ID, l.Name, l.URL, l.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

type linkAddCmd struct{}

func (linkAddCmd) Name() string        { return "link-add" }
func (linkAddCmd) Description() string { return "Add a named external link" }
func (linkAddCmd) Usage() string       { return "link-add <name> <url>" }

func (linkAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(apiURL(cfg, "/api/links"), linkRequest{Name: args[0], URL: args[1]}, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		var l model.Link
		if err := json.Unmarshal(body, &l); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Added: id=%d\n", l.ID)
		return nil
	case http.StatusUnauthorized:
		return errNotLoggedIn
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

type linkEditCmd struct{}

func (linkEditCmd) Name() string        { return "link-edit" }
func (linkEditCmd) Description() string { return "Replace name and url of a link" }
func (linkEditCmd) Usage() string       { return "link-edit <id> <name> <url>" }

func (linkEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	endpoint := apiURL(cfg, fmt.Sprintf("/api/links/%d", id))
	resp, body, err := api.DoJSON(http.MethodPut, endpoint, linkRequest{Name: args[1], URL: args[2]}, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Updated")
		return nil
	case http.StatusUnauthorized:
		return errNotLoggedIn
	case http.StatusNotFound:
		return fmt.Errorf("link %d not found", id)
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

type linkRmCmd struct{}

func (linkRmCmd) Name() string        { return "link-rm" }
func (linkRmCmd) Description() string { return "Delete a link" }
func (linkRmCmd) Usage() string       { return "link-rm <id>" }

func (linkRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	endpoint := apiURL(cfg, fmt.Sprintf("/api/links/%d", id))
	resp, body, err := api.Do(http.MethodDelete, endpoint, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusNoContent:
		fmt.Fprintln(Out, "Deleted")
		return nil
	case http.StatusUnauthorized:
		return errNotLoggedIn
	case http.StatusNotFound:
		return fmt.Errorf("link %d not found", id)
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() {
	RegisterCmd(linksCmd{})
	RegisterCmd(linkAddCmd{})
	RegisterCmd(linkEditCmd{})
	RegisterCmd(linkRmCmd{})
}
