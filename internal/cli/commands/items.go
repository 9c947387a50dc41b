package commands

import (
	"FileVault/internal/config"
	"FileVault/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"FileVault/internal/cli/api"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать записи каталога (опционально по разделу)"
}
func (itemsCmd) Usage() string { return "items [category]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	endpoint := apiURL(cfg, "/api/items")
	if len(args) == 1 {
		endpoint += "?category=" + url.QueryEscape(args[0])
	}

	resp, body, err := api.Do(http.MethodGet, endpoint, api.LoadToken())
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

	var items []model.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range items {
		notes := ""
		if it.Notes != "" {
			notes = "  notes=" + it.Notes
		}
		fmt.Fprintf(Out, "- %d  %s  [%s]  original=%s  uploaded=%s%s\n",
			it.ID, it.Name, it.Category, it.OriginalName,
			it.UploadedAt.Format("2006-01-02 15:04:05"), notes)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
