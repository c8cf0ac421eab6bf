package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cloudconnect/cloudconnect/pkg/resource"
)

// resourceView is the serializable projection of a resource for command
// output.
type resourceView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	State     string         `json:"state"`
	Deleted   bool           `json:"deleted"`
	CreatedAt time.Time      `json:"created_at"`
	Config    map[string]any `json:"config"`
}

func viewOf(r *resource.Resource) resourceView {
	return resourceView{
		ID:        r.ID(),
		Name:      r.Name(),
		Type:      r.Type(),
		State:     string(r.State()),
		Deleted:   r.IsDeleted(),
		CreatedAt: r.CreatedAt(),
		Config:    r.Config(),
	}
}

// printResource writes one resource, honoring the --json flag.
func printResource(w io.Writer, r *resource.Resource) error {
	if jsonOutput {
		return printJSON(w, viewOf(r))
	}
	fmt.Fprintln(w, r.String())
	return nil
}

// printResourceDetails writes the full projection of one resource.
func printResourceDetails(w io.Writer, r *resource.Resource) error {
	view := viewOf(r)
	if jsonOutput {
		return printJSON(w, view)
	}

	fmt.Fprintf(w, "ID:         %s\n", view.ID)
	fmt.Fprintf(w, "Name:       %s\n", view.Name)
	fmt.Fprintf(w, "Type:       %s\n", view.Type)
	fmt.Fprintf(w, "State:      %s\n", view.State)
	fmt.Fprintf(w, "Created at: %s\n", view.CreatedAt.Format(time.RFC3339))
	if len(view.Config) > 0 {
		fmt.Fprintln(w, "Config:")
		for _, k := range sortedKeys(view.Config) {
			fmt.Fprintf(w, "  %s: %v\n", k, view.Config[k])
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseSetValues turns repeated --set k=v flags into a configuration bag.
// Values are coerced: booleans and integers become typed, everything else
// stays a string.
func parseSetValues(pairs []string) (map[string]any, error) {
	config := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set value %q (expected key=value)", pair)
		}
		config[key] = coerceValue(value)
	}
	return config, nil
}

func coerceValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
