package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naveenspark/athleten/internal/config"
	"github.com/naveenspark/athleten/internal/logging"
	"github.com/naveenspark/athleten/internal/store"
	"github.com/naveenspark/athleten/internal/tui"
	"github.com/naveenspark/athleten/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the state shared by all commands once flags are parsed.
type cli struct {
	out        io.Writer
	configPath string
	verbose    bool
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "athleten",
		Short: "Search rowing athletes from the terminal",
		Long: `athleten searches rowing athletes and shows their race records.

Run without a command to open the interactive search.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { c.logger.Sync() }, //nolint:errcheck // stderr sync fails on some terminals
		RunE:              c.runTUI,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.athleten/config.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.searchCmd(),
		c.submitCmd(),
		c.optionsCmd(),
		c.athleteCmd(),
		c.versionCmd(),
	)
	return root
}

// setup loads configuration and builds the logger. The TUI owns the
// terminal, so the root command logs to a file.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.Logging.Level
	if c.verbose {
		level = "debug"
	}
	file := cfg.Logging.File
	if file == "" && !cmd.HasParent() {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		file = filepath.Join(dir, "athleten.log")
	}
	logger, err := logging.New(level, file)
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

// tokenStore returns the session token store: ATHLETEN_TOKEN when set,
// otherwise ~/.athleten/token.
func (c *cli) tokenStore() (client.TokenStore, error) {
	if tok := os.Getenv("ATHLETEN_TOKEN"); tok != "" {
		return client.NewMemoryTokenStore(tok), nil
	}
	path, err := config.TokenPath()
	if err != nil {
		return nil, err
	}
	return client.NewFileTokenStore(path), nil
}

func (c *cli) newClient(tokens client.TokenStore, nav client.Navigator) (*client.Client, error) {
	timeout, err := c.cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	opts := []client.Option{
		client.WithLogger(c.logger.Named("client")),
		client.WithTimeout(timeout),
		client.WithAuthRoute(c.cfg.API.AuthRoute),
		client.WithFormPath(c.cfg.API.FormPath),
	}
	if nav != nil {
		opts = append(opts, client.WithNavigator(nav))
	}
	return client.New(c.cfg.API.URL, tokens, opts...), nil
}

// newStore wires the store to the client. Remote mode sends searches to the
// API; stub mode answers them locally.
func (c *cli) newStore(api *client.Client) *store.Store {
	opts := []store.Option{store.WithLogger(c.logger.Named("store"))}
	if c.cfg.Search.Mode == config.SearchModeRemote {
		opts = append(opts, store.WithSearcher(api))
	}
	return store.New(api, opts...)
}

// newSession builds the client and store for a command.
func (c *cli) newSession(nav client.Navigator) (*client.Client, *store.Store, error) {
	tokens, err := c.tokenStore()
	if err != nil {
		return nil, nil, err
	}
	api, err := c.newClient(tokens, nav)
	if err != nil {
		return nil, nil, err
	}
	return api, c.newStore(api), nil
}

func (c *cli) runTUI(*cobra.Command, []string) error {
	nav := &tui.ProgramNavigator{}
	_, st, err := c.newSession(nav)
	if err != nil {
		return err
	}
	c.logger.Info("starting tui", zap.String("version", version), zap.String("search_mode", c.cfg.Search.Mode))

	app := tui.NewApp(st, version, c.cfg.API.AuthRoute)
	p := tea.NewProgram(app, tea.WithAltScreen())
	nav.Attach(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
