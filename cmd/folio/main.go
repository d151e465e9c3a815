package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhaoyu-io/folio/internal/app"
	"github.com/zhaoyu-io/folio/internal/client"
	"github.com/zhaoyu-io/folio/internal/config"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/logging"
	"github.com/zhaoyu-io/folio/internal/theme"
)

var version = "dev"

type options struct {
	configPath  string
	verbose     bool
	url         string
	token       string
	contentPath string
	logFile     string
	theme       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Browse the folio landing page in the terminal",
		Long: "Renders the landing page with scroll-triggered section animations.\n" +
			"With --url it follows a folio-server's live content feed; otherwise it\n" +
			"reads the local content file.",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.url, "url", "", "WebSocket URL of a folio-server, e.g. ws://127.0.0.1:8080/ws (empty: offline)")
	cmd.Flags().StringVar(&opts.token, "token", "", "auth token for admin endpoints")
	cmd.Flags().StringVar(&opts.contentPath, "content", "", "override content file path (offline mode)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "-", `log destination; "-" discards`)
	cmd.Flags().StringVar(&opts.theme, "theme", "", "set the theme (light or dark) and remember it")
	return cmd
}

func run(ctx context.Context, opts options) error {
	log, err := logging.New(logging.Options{Verbose: opts.verbose, Path: opts.logFile})
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.contentPath != "" {
		cfg.Content.Path = opts.contentPath
	}

	c, err := content.LoadOrDefault(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	themePath := cfg.Theme.Path
	if themePath == "" {
		if themePath, err = theme.DefaultPath(); err != nil {
			log.Warn("theme will not persist", zap.Error(err))
		}
	}
	themes := theme.NewStore(themePath, nil)
	if opts.theme != "" {
		mode, ok := theme.ParseMode(opts.theme)
		if !ok {
			return fmt.Errorf("unknown theme %q", opts.theme)
		}
		if err := themes.Set(mode); err != nil {
			log.Warn("save theme", zap.Error(err))
		}
	}

	appOpts := app.Options{
		Content:   c,
		Themes:    themes,
		Animation: cfg.Animation,
		Logger:    log.Named("tui"),
	}
	if opts.url != "" {
		appOpts.WS = client.NewWSClient(opts.url, log.Named("ws"))
		appOpts.HTTP = client.NewHTTPClient(deriveHTTPBase(opts.url), opts.token)
	}

	p := tea.NewProgram(app.New(appOpts), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// deriveHTTPBase converts ws://host:port/ws → http://host:port
func deriveHTTPBase(wsURL string) string {
	u, err := url.Parse(wsURL)
	if err != nil {
		return "http://127.0.0.1:8080"
	}
	scheme := "http"
	if strings.HasPrefix(u.Scheme, "wss") {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, u.Host)
}
