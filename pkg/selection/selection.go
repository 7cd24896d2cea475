// Package selection resolves "which existing remote item does the user
// mean" from a preselected id, a remembered default, or an interactive list
// prompt.
//
// Resolution order: a preselected id short-circuits everything; otherwise a
// default persisted under the active profile is tried (and silently cleaned
// up when it has gone stale); otherwise the candidate list is fetched and
// the user picks an item by id or 1-based index. After a prompted pick the
// user may save the choice as the new default, or opt out of being asked
// again.
package selection

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/pterm/pterm"

	"github.com/hubforge/hubctl/pkg/api"
	"github.com/hubforge/hubctl/pkg/config"
	"github.com/hubforge/hubctl/pkg/output"
	"github.com/hubforge/hubctl/pkg/prompt"
)

// ErrNothingToSelect is returned when the candidate list is empty; there is
// nothing meaningful to prompt for and the command terminates.
var ErrNothingToSelect = errors.New("nothing to select")

// neverAskSuffix marks the per-key opt-out flag for the save-default
// question.
const neverAskSuffix = "::neverAskForSaveAgain"

// DefaultValue describes a persisted default for a selection.
type DefaultValue[T any, K ~string] struct {
	// ConfigKey is the managed-config key the default id is stored under.
	ConfigKey string
	// GetItem resolves a saved id; 403/404-shaped failures mark the saved
	// default stale.
	GetItem func(ctx context.Context, id K) (T, error)
	// UserMessage is shown when the saved default is used.
	UserMessage func(item T) string
}

// Config parameterizes one SelectFromList call.
type Config[T any, K ~string] struct {
	// ItemName names the kind of item in generated prompts, e.g. "device".
	ItemName string
	// PrimaryKey extracts the id returned by SelectFromList.
	PrimaryKey func(item T) K
	// SortKey orders the candidate list and names items in the rendered
	// table; optional.
	SortKey func(item T) string
	// ListItems produces the candidates; only called when prompting is
	// actually needed.
	ListItems func(ctx context.Context) ([]T, error)
	// GetIDFromUser overrides the default render-then-prompt flow.
	GetIDFromUser func(ui prompt.Interface, items []T) (K, error)
	// PreselectedID short-circuits all lookups and prompting when set.
	PreselectedID K
	// AutoChoose returns a single candidate without prompting.
	AutoChoose bool
	// Default enables the persisted-default lifecycle.
	Default *DefaultValue[T, K]
}

// SelectFromList resolves a single item id.
func SelectFromList[T any, K ~string](ctx context.Context, conf *config.Config, ui prompt.Interface, sel Config[T, K]) (K, error) {
	if sel.PreselectedID != "" {
		return sel.PreselectedID, nil
	}

	if sel.Default != nil && conf != nil {
		id, found, err := resolveSavedDefault(ctx, conf, sel)
		if err != nil {
			return "", err
		}
		if found {
			return id, nil
		}
	}

	items, err := fetchItems(ctx, sel)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", fmt.Errorf("no %ss found: %w", itemName(sel), ErrNothingToSelect)
	}
	if len(items) == 1 && sel.AutoChoose {
		return sel.PrimaryKey(items[0]), nil
	}

	if sel.SortKey != nil {
		sort.SliceStable(items, func(i, j int) bool {
			return sel.SortKey(items[i]) < sel.SortKey(items[j])
		})
	}

	var id K
	if sel.GetIDFromUser != nil {
		id, err = sel.GetIDFromUser(ui, items)
	} else {
		id, err = promptForID(ui, sel, items)
	}
	if err != nil {
		return "", err
	}

	if sel.Default != nil && conf != nil {
		if err := offerToSaveDefault(conf, ui, sel, id); err != nil {
			return "", err
		}
	}

	return id, nil
}

// resolveSavedDefault tries the persisted default. A stale default (403/404
// from GetItem) is cleared and reported as not found; any other GetItem
// failure propagates unchanged.
func resolveSavedDefault[T any, K ~string](ctx context.Context, conf *config.Config, sel Config[T, K]) (K, bool, error) {
	saved := conf.StringValue(sel.Default.ConfigKey, "")
	if saved == "" {
		return "", false, nil
	}

	item, err := sel.Default.GetItem(ctx, K(saved))
	if err != nil {
		if api.IsNotFound(err) || api.IsForbidden(err) {
			if resetErr := conf.ResetManagedKey(sel.Default.ConfigKey, nil); resetErr != nil {
				return "", false, resetErr
			}
			return "", false, nil
		}
		return "", false, err
	}

	pterm.Info.Println(sel.Default.UserMessage(item))
	return K(saved), true, nil
}

// fetchItems lists candidates with a spinner on stderr so the wait is
// visible without disturbing prompt output.
func fetchItems[T any, K ~string](ctx context.Context, sel Config[T, K]) ([]T, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Fetching %ss...", itemName(sel))
	s.Start()
	items, err := sel.ListItems(ctx)
	s.Stop()
	return items, err
}

// promptForID renders the candidates and asks for an id or 1-based index.
func promptForID[T any, K ~string](ui prompt.Interface, sel Config[T, K], items []T) (K, error) {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{strconv.Itoa(i + 1), displayName(sel, item), string(sel.PrimaryKey(item))})
	}
	if err := output.Table([]string{"#", "Name", "ID"}, rows); err != nil {
		return "", err
	}

	validate := func(input string) error {
		if _, ok := matchID(sel, items, input); ok {
			return nil
		}
		if index, err := strconv.Atoi(input); err == nil {
			if index < 1 || index > len(items) {
				return fmt.Errorf("index %d is out of range", index)
			}
			return nil
		}
		return fmt.Errorf("no %s found with id %q", itemName(sel), input)
	}

	answer, err := ui.Text(prompt.TextOptions{
		Message:  fmt.Sprintf("Select a %s (id or index)", itemName(sel)),
		Validate: validate,
	})
	if err != nil {
		return "", err
	}

	if id, ok := matchID(sel, items, answer); ok {
		return id, nil
	}
	index, err := strconv.Atoi(answer)
	if err != nil || index < 1 || index > len(items) {
		return "", fmt.Errorf("no %s found with id %q", itemName(sel), answer)
	}
	return sel.PrimaryKey(items[index-1]), nil
}

// offerToSaveDefault asks whether to remember the prompted choice, honoring
// the per-key opt-out flag.
func offerToSaveDefault[T any, K ~string](conf *config.Config, ui prompt.Interface, sel Config[T, K], id K) error {
	if conf.BoolValue(sel.Default.ConfigKey+neverAskSuffix, false) {
		return nil
	}

	choice, err := ui.Select(prompt.SelectOptions{
		Message: fmt.Sprintf("Remember this %s as the default?", itemName(sel)),
		Options: []string{"yes", "no", "never"},
		Default: "no",
	})
	if err != nil {
		return err
	}

	switch choice {
	case "yes":
		return conf.SetKey(sel.Default.ConfigKey, string(id))
	case "never":
		return conf.SetKey(sel.Default.ConfigKey+neverAskSuffix, true)
	}
	return nil
}

func matchID[T any, K ~string](sel Config[T, K], items []T, input string) (K, bool) {
	for _, item := range items {
		if id := sel.PrimaryKey(item); string(id) == input {
			return id, true
		}
	}
	return "", false
}

func displayName[T any, K ~string](sel Config[T, K], item T) string {
	if sel.SortKey != nil {
		return sel.SortKey(item)
	}
	return string(sel.PrimaryKey(item))
}

func itemName[T any, K ~string](sel Config[T, K]) string {
	if sel.ItemName != "" {
		return sel.ItemName
	}
	return "item"
}
