// Package cli is the taskboard terminal client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskboard/internal/client"
	"taskboard/internal/logging"
	"taskboard/internal/notify"
	"taskboard/internal/session"
	"taskboard/internal/views"
)

// app is built once per invocation by the root command's pre-run hook.
type app struct {
	cfg     *Config
	out     io.Writer
	errOut  io.Writer
	logger  *zap.Logger
	toasts  *notify.Center
	session *session.Manager
	client  *client.Client
	timeout time.Duration
	printer printer
	in      *bufio.Reader
}

type globalFlags struct {
	server     string
	output     string
	configPath string
	verbose    bool
	timeout    time.Duration
}

func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("server") {
		cfg.Server = flags.server
	}
	if cmd.Flags().Changed("output") {
		if err := validateFormat(flags.output); err != nil {
			return nil, err
		}
		cfg.Output = flags.output
	}

	logger := zap.NewNop()
	if flags.verbose {
		logger = logging.NewConsole(cmd.ErrOrStderr(), zapcore.DebugLevel)
	}

	path := cfg.SessionFile
	if path == "" {
		if path, err = session.DefaultPath(); err != nil {
			return nil, err
		}
	}

	toasts := notify.NewCenter(logger, notify.WithSink(notify.WriterSink(cmd.ErrOrStderr())))
	sess, err := session.NewManager(session.NewFileStore(path), toasts, logger)
	if err != nil {
		return nil, err
	}
	c := client.New(cfg.Server, sess)
	sess.Attach(c)

	a := &app{
		cfg:     cfg,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
		logger:  logger,
		toasts:  toasts,
		session: sess,
		client:  c,
		timeout: flags.timeout,
		in:      bufio.NewReader(cmd.InOrStdin()),
	}
	a.printer = printer{w: a.out, format: cfg.Output, theme: sess.Theme()}
	return a, nil
}

func (a *app) context(parent context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, a.timeout)
}

// requireLogin validates the stored token before a protected command runs.
func (a *app) requireLogin(ctx context.Context) error {
	if err := a.session.RequireAuth(); err != nil {
		return fmt.Errorf("%w: run `taskboard login` first", err)
	}
	route, err := a.session.Restore(ctx)
	if err != nil {
		return err
	}
	if route == session.RouteLogin {
		return fmt.Errorf("%w: session expired", session.ErrNotAuthenticated)
	}
	return nil
}

func (a *app) boardsPage() *views.BoardsPage {
	return views.NewBoardsPage(a.client, a.toasts, a.logger)
}

func (a *app) boardDetail(boardID string) *views.BoardDetail {
	return views.NewBoardDetail(boardID, a.client, a.toasts, a.logger)
}

func (a *app) settings() *views.Settings {
	return views.NewSettings(a.client, a.session, a.toasts, a.logger)
}

func (a *app) authPages() *views.AuthPages {
	return views.NewAuthPages(a.client, a.session, a.toasts)
}

// prompt reads one line from stdin when value was not given as a flag.
func (a *app) prompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprintf(a.errOut, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *app) myTasks() *views.MyTasks {
	return views.NewMyTasks(a.client, a.toasts, a.logger)
}
