package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/client/billing"
	"github.com/dmitrijs2005/qrscanner/internal/client/client"
	"github.com/dmitrijs2005/qrscanner/internal/client/config"
	"github.com/dmitrijs2005/qrscanner/internal/client/feedback"
	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/scanner"
	"github.com/dmitrijs2005/qrscanner/internal/client/screens"
	"github.com/dmitrijs2005/qrscanner/internal/client/services"
	"github.com/dmitrijs2005/qrscanner/internal/filex"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/workers"

	_ "modernc.org/sqlite"
)

const (
	connectTimeout = 3 * time.Second
	ackWorkers     = 2
)

// App is the composition root: every long-lived component is built here once
// and shared.
type App struct {
	config *config.Config
	logger logging.Logger
	out    io.Writer
	reader *bufio.Reader

	repos     *client.Repositories
	closers   []io.Closer
	accountID string

	pool    *workers.Pool
	billing *billing.Manager

	scans    services.ScanService
	settings services.SettingsService
	backup   services.BackupService

	decoder     scanner.Decoder
	coordinator *scanner.Coordinator
	detected    chan models.ScannedCode

	home         *screens.Home
	history      *screens.History
	scanScreen   *screens.Scanner
	prefs        *screens.Settings
	subscription *screens.Subscription
}

// NewApp opens the local database, dials the billing service and wires the
// screens. Nothing talks to the network until Run starts the connection
// watcher.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		logger.Error(ctx, "error creating database directory", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	accountID, err := services.LoadOrCreateAccountID(ctx, repos.Preferences)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	apiClient, err := client.NewBillingClient(c.BillingEndpointAddr, accountID, logger.With("component", "grpc"))
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	a := &App{
		config:    c,
		logger:    logger,
		out:       out,
		reader:    bufio.NewReader(in),
		repos:     repos,
		accountID: accountID,
		closers:   []io.Closer{apiClient, repos},
	}
	if err := a.wire(ctx, apiClient, scanner.NewZXingDecoder(), feedback.NewTerminal(out, logger)); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// wire builds the services and screens on top of repos and svc.
func (a *App) wire(ctx context.Context, svc billing.Service, decoder scanner.Decoder, player feedback.Player) error {
	a.pool = workers.New(ctx, ackWorkers, a.logger.With("component", "workers"))
	a.billing = billing.NewManager(ctx, svc, a.pool, a.logger)

	a.scans = services.NewScanService(a.repos.Scans, a.logger)
	a.settings = services.NewSettingsService(a.repos.Preferences, a.logger)
	a.backup = services.NewBackupService(a.scans, services.BackupConfig{
		Bucket:   a.config.S3Bucket,
		Region:   a.config.S3Region,
		Endpoint: a.config.S3BaseEndpoint,
		User:     a.config.S3RootUser,
		Password: a.config.S3RootPassword,
	}, a.accountID, a.logger)

	if err := a.scans.Refresh(ctx); err != nil {
		return err
	}
	if _, err := a.settings.Load(ctx); err != nil {
		return err
	}

	a.decoder = decoder
	a.detected = make(chan models.ScannedCode, 1)
	a.coordinator = scanner.NewCoordinator(decoder, a.onCodeDetected, a.logger)

	a.home = screens.NewHome(ctx, a.scans, a.billing, a.logger)
	a.history = screens.NewHistory(ctx, a.scans, a.logger)
	a.scanScreen = screens.NewScanner(ctx, a.scans, a.settings, player, a.coordinator, a.logger)
	a.prefs = screens.NewSettings(ctx, a.settings, a.config.SupportEmail, a.logger)
	a.subscription = screens.NewSubscription(ctx, a.billing, a.logger)
	return nil
}

// onCodeDetected runs on the frame-analysis goroutine.
func (a *App) onCodeDetected(code models.ScannedCode) {
	if err := a.scanScreen.OnCodeDetected(code); err != nil {
		a.logger.Warn(context.Background(), "scan not handled", "error", err)
	}
	select {
	case a.detected <- code:
	default:
	}
}

// Run starts the background watchers and blocks in the REPL until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartConnectionWatcher(ctx, a.config.ConnectCheckInterval)
	go a.logStatusChanges(ctx)

	fmt.Fprintln(a.out, "Welcome to QR Scanner CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	// screens are nil when wire failed before building them
	if a.home != nil {
		a.home.Close()
	}
	if a.history != nil {
		a.history.Close()
	}
	if a.scanScreen != nil {
		a.scanScreen.Close()
	}
	if a.prefs != nil {
		a.prefs.Close()
	}
	if a.subscription != nil {
		a.subscription.Close()
	}
	if a.billing != nil {
		_ = a.billing.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) getStatus() string {
	st := a.billing.State()
	s := st.Status.String()
	if st.IsPremium {
		s = "premium " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// StartConnectionWatcher keeps the billing connection up: while the manager
// is disconnected it retries Connect every interval.
func (a *App) StartConnectionWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		a.ensureConnected(ctx)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) ensureConnected(ctx context.Context) {
	if a.billing.State().Status != models.Disconnected {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := a.billing.Connect(cctx); err != nil {
		a.logger.Debug(ctx, "billing connect failed", "error", err)
	}
}

func (a *App) logStatusChanges(ctx context.Context) {
	last := a.billing.State().Status
	for st := range a.billing.Subscribe(ctx) {
		if st.Status != last {
			last = st.Status
			a.logger.Info(ctx, "billing "+st.Status.String())
		}
	}
}
