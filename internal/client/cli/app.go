package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/studentdir/internal/client/client"
	"github.com/dmitrijs2005/studentdir/internal/client/config"
	"github.com/dmitrijs2005/studentdir/internal/client/directory"
	"github.com/dmitrijs2005/studentdir/internal/client/services"
	"github.com/dmitrijs2005/studentdir/internal/logging"
)

const banner = "VCTM STUDENTS DIRECTORY"

// Log rotation limits for the client log file.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

type App struct {
	config *config.Config
	dir    *directory.Directory
	log    logging.Logger
	closer io.Closer
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, closer := logging.New(logging.FileOptions{
		Path:       c.LogFile,
		Level:      c.LogLevel,
		MaxSizeMB:  logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAgeDays: logMaxAgeDays,
	})

	apiClient := client.NewRESTClient(c.APIBaseURL, c.RequestTimeout)
	svc := services.NewStudentService(apiClient, logger)

	return &App{
		config: c,
		dir:    directory.New(svc, logger),
		log:    logger.With("component", "cli"),
		closer: closer,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run prints the banner, loads the directory and serves commands until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer != nil {
			_ = a.closer.Close()
		}
	}()

	a.log.Info(ctx, "client started", "api", a.config.APIBaseURL)

	fmt.Fprintln(a.out, banner)
	fmt.Fprintln(a.out, "Type 'help' for commands.")
	_ = a.Reload(ctx)

	runREPL(ctx, a, a.reader)

	a.log.Info(ctx, "client stopped")
}

// showErr prints the inline message for err and logs it.
func (a *App) showErr(ctx context.Context, err error) {
	if err == nil {
		return
	}
	a.log.Warn(ctx, "operation failed", "error", err)
	fmt.Fprintln(a.out, "error:", directory.Describe(err))
}
