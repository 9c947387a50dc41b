package commands

import (
	"FileVault/internal/config"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"FileVault/internal/cli/api"
)

// patchItem шлёт частичное обновление записи и разбирает типовые статусы.
func patchItem(cfg *config.Config, id int64, payload map[string]string) error {
	endpoint := apiURL(cfg, fmt.Sprintf("/api/items/%d", id))
	resp, body, err := api.DoJSON(http.MethodPatch, endpoint, payload, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return errNotLoggedIn
	case http.StatusNotFound:
		return fmt.Errorf("item %d not found", id)
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

type renameCmd struct{}

func (renameCmd) Name() string        { return "rename" }
func (renameCmd) Description() string { return "Change the display name of an item" }
func (renameCmd) Usage() string       { return "rename <id> <new name>" }

func (renameCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	if err := patchItem(cfg, id, map[string]string{"name": strings.Join(args[1:], " ")}); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Renamed")
	return nil
}

type noteCmd struct{}

func (noteCmd) Name() string        { return "note" }
func (noteCmd) Description() string { return "Replace the notes of an item" }
func (noteCmd) Usage() string       { return "note <id> [text]" }

func (noteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	// пустой text очищает заметку
	if err := patchItem(cfg, id, map[string]string{"notes": strings.Join(args[1:], " ")}); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Notes saved")
	return nil
}

type rmCmd struct{}

func (rmCmd) Name() string        { return "rm" }
func (rmCmd) Description() string { return "Delete an item and its blob" }
func (rmCmd) Usage() string       { return "rm <id>" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	endpoint := apiURL(cfg, fmt.Sprintf("/api/items/%d", id))
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
		return fmt.Errorf("item %d not found", id)
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() {
	RegisterCmd(renameCmd{})
	RegisterCmd(noteCmd{})
	RegisterCmd(rmCmd{})
}
