package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudconnect/cloudconnect/pkg/resource"
)

func newInteractiveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run the interactive resource manager",
		Long: `Run a menu-driven session for managing resources.

Resources created in the session live until the session ends; every
operation is recorded in the audit trail. Core errors are displayed and
the menu continues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := &interactiveSession{
				app: app,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return session.run(cmd)
		},
	}
}

type interactiveSession struct {
	app *App
	in  *bufio.Scanner
	out io.Writer
}

func (s *interactiveSession) run(cmd *cobra.Command) error {
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		default:
		}

		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "===== CloudConnect Resource Manager =====")
		fmt.Fprintln(s.out, "1. Create resource")
		fmt.Fprintln(s.out, "2. Start resource")
		fmt.Fprintln(s.out, "3. Stop resource")
		fmt.Fprintln(s.out, "4. Delete resource")
		fmt.Fprintln(s.out, "5. List resources")
		fmt.Fprintln(s.out, "6. View audit logs")
		fmt.Fprintln(s.out, "7. Resource details")
		fmt.Fprintln(s.out, "8. Exit")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.createResource(cmd)
		case "2":
			s.lifecycle(cmd, resource.OpStart)
		case "3":
			s.lifecycle(cmd, resource.OpStop)
		case "4":
			s.lifecycle(cmd, resource.OpDelete)
		case "5":
			s.listResources()
		case "6":
			s.viewLogs(cmd)
		case "7":
			s.resourceDetails()
		case "8":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option, try again.")
		}
	}
}

// prompt reads one trimmed line; ok is false on EOF.
func (s *interactiveSession) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *interactiveSession) fail(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func (s *interactiveSession) createResource(cmd *cobra.Command) {
	types := s.app.Factory.Types()
	fmt.Fprintln(s.out, "Available types:")
	for i, t := range types {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, t)
	}

	choice, ok := s.prompt("Type: ")
	if !ok {
		return
	}
	typeName := choice
	if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(types) {
		typeName = types[idx-1]
	}

	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}

	config, ok := s.promptConfig(typeName)
	if !ok {
		return
	}

	op := s.app.startOp(cmd.Context(), "create", name, typeName)
	res, err := s.app.Factory.Create(typeName, name, config)
	if err == nil {
		err = s.app.Manager.Add(res)
	}
	op.End(err)

	if err != nil {
		s.app.recordErrorMetric(err)
		s.fail(err)
		return
	}
	s.app.Telemetry.Metrics.RecordResourceCreated(typeName)
	fmt.Fprintf(s.out, "Created %s\n", res.String())
}

// promptConfig collects the variant-specific configuration fields.
func (s *interactiveSession) promptConfig(typeName string) (map[string]any, bool) {
	config := map[string]any{}

	read := func(label, key string) bool {
		v, ok := s.prompt(label)
		if !ok {
			return false
		}
		config[key] = coerceValue(v)
		return true
	}

	switch typeName {
	case resource.TypeAppService:
		return config, read("Runtime (python/nodejs/dotnet): ", "runtime") &&
			read("Region (EastUS/WestEurope/CentralIndia): ", "region") &&
			read("Replica count (1-3): ", "replica_count")
	case resource.TypeStorageAccount:
		return config, read("Encryption enabled (true/false): ", "encryption_enabled") &&
			read("Access key: ", "access_key") &&
			read("Max size GB (1-10000): ", "max_size_gb")
	case resource.TypeCacheDB:
		return config, read("TTL seconds (60-86400): ", "ttl_seconds") &&
			read("Capacity MB (128-16384): ", "capacity_mb") &&
			read("Eviction policy (LRU/FIFO/LFU): ", "eviction_policy")
	}

	// Unknown type: let the factory produce the classified error.
	return config, true
}

func (s *interactiveSession) lifecycle(cmd *cobra.Command, op resource.Op) {
	name, ok := s.prompt("Resource name: ")
	if !ok {
		return
	}

	res, err := s.app.Manager.Get(name)
	if err != nil {
		s.app.recordErrorMetric(err)
		s.fail(err)
		return
	}

	iop := s.app.startOp(cmd.Context(), string(op), res.Name(), res.Type())
	switch op {
	case resource.OpStart:
		err = res.Start()
	case resource.OpStop:
		err = res.Stop()
	case resource.OpDelete:
		err = res.Delete()
	}
	iop.End(err)

	s.app.Telemetry.Metrics.RecordTransition(res.Type(), string(op), err)
	if err != nil {
		s.app.recordErrorMetric(err)
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, res.String())
}

func (s *interactiveSession) listResources() {
	resources := s.app.Manager.List(false)
	if len(resources) == 0 {
		fmt.Fprintln(s.out, "No resources found.")
		return
	}
	for _, r := range resources {
		fmt.Fprintln(s.out, r.String())
	}
}

func (s *interactiveSession) viewLogs(cmd *cobra.Command) {
	resourceType, ok := s.prompt("Resource type (empty for all): ")
	if !ok {
		return
	}

	if s.app.Store != nil {
		if err := showStoreLogs(s.app, cmd, resourceType, 0); err != nil {
			s.fail(err)
		}
		return
	}
	if err := showFileLogs(s.app, cmd, resourceType, 0); err != nil {
		s.fail(err)
	}
}

func (s *interactiveSession) resourceDetails() {
	name, ok := s.prompt("Resource name: ")
	if !ok {
		return
	}

	res, err := s.app.Manager.Get(name)
	if err != nil {
		s.app.recordErrorMetric(err)
		s.fail(err)
		return
	}
	if err := printResourceDetails(s.out, res); err != nil {
		s.fail(err)
	}
}
