package commands

import (
	"FileVault/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"FileVault/internal/cli/api"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show login status" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.Do(http.MethodGet, apiURL(cfg, "/api/user/status"), api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var out struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}
	fmt.Fprintln(Out, out.Result)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
