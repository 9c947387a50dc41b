package commands

import (
	"FileVault/internal/config"
	"FileVault/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"FileVault/internal/cli/api"
)

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload a file into a category" }
func (uploadCmd) Usage() string       { return "upload <category> <path> [name] [notes]" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	category := args[0]
	path := args[1]
	fields := map[string]string{"category": category}
	if len(args) > 2 {
		fields["name"] = args[2]
	}
	if len(args) > 3 {
		fields["notes"] = strings.Join(args[3:], " ")
	}

	resp, body, err := api.PostMultipart(apiURL(cfg, "/api/items"), api.LoadToken(), "file", path, fields)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		var it model.Item
		if err := json.Unmarshal(body, &it); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Uploaded: id=%d name=%s category=%s size=%d\n", it.ID, it.Name, it.Category, it.Size)
		return nil
	case http.StatusUnauthorized:
		return errNotLoggedIn
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(uploadCmd{}) }
