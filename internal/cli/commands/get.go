package commands

import (
	"FileVault/internal/config"
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"strconv"
	"strings"

	"FileVault/internal/cli/api"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Download an item into the current dir (or to out-path)" }
func (getCmd) Usage() string       { return "get <id> [out-path]" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	endpoint := apiURL(cfg, fmt.Sprintf("/api/items/%d/download", id))
	resp, body, err := api.Do(http.MethodGet, endpoint, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return errNotLoggedIn
	case http.StatusNotFound:
		return fmt.Errorf("item %d not found", id)
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	out := ""
	if len(args) == 2 {
		out = args[1]
	} else {
		// имя берём из Content-Disposition (оригинальное имя файла)
		if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
			out = params["filename"]
		}
		if out == "" {
			out = fmt.Sprintf("item_%d", id)
		}
	}

	if err := os.WriteFile(out, body, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved %d bytes to %s\n", len(body), out)
	return nil
}

func init() { RegisterCmd(getCmd{}) }
