package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/api"
	"github.com/dmitrijs2005/userdir/internal/client/config"
	"github.com/dmitrijs2005/userdir/internal/client/credstore"
	"github.com/dmitrijs2005/userdir/internal/client/directory"
	"github.com/dmitrijs2005/userdir/internal/client/editor"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/session"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// App owns the wiring of the interactive client: one credential store,
// one session guard, one API client, and the list controller. Edit
// sessions are created per record as the user opens them.
type App struct {
	config *config.Config
	log    logging.Logger
	guard  *session.Guard
	api    api.Client
	list   *directory.Controller
	sched  editor.Scheduler
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := credstore.NewFileStore(cfg.SessionFile)
	guard := session.NewGuard(store, cfg.SessionTTL, log)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)

	a := &App{
		config: cfg,
		log:    log,
		guard:  guard,
		api:    apiClient,
		sched:  editor.NewScheduler(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.list = directory.NewController(apiClient, guard, log, a.onSessionExpired)
	return a
}

// Run starts the REPL. When a valid session is already stored, the
// directory view is entered right away; otherwise the user lands on the
// login prompt.
func (a *App) Run(ctx context.Context) {
	printlnFn("userdir (type 'help' for commands)")

	if a.guard.Require(a.promptLogin) {
		a.enterDirectory(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.guard.IsAuthenticated()
}

// enterDirectory is the login → directory transition: the first fetch is
// always page 1.
func (a *App) enterDirectory(ctx context.Context) {
	a.list.LoadPage(ctx, 1)
	a.renderList()
}

// onSessionExpired is the directory → login transition. The credential is
// already cleared by whoever detected the expiry; subsequent prompts show
// the logged-out view.
func (a *App) onSessionExpired() {
	printlnFn("Session expired, please login again.")
}

func (a *App) promptLogin() {
	printlnFn("Please login to continue.")
}

func (a *App) status() string {
	if !a.guard.IsAuthenticated() {
		return ""
	}
	s := a.list.State()
	return fmt.Sprintf("(page %d/%d) ", s.CurrentPage, s.TotalPages)
}

func (a *App) newEditSession(rec models.Record) *editor.Session {
	return editor.NewSession(rec, a.api, a.guard, a.sched, a.config.SuccessCloseDelay, a.log, editor.Callbacks{
		OnUpdated:        a.list.ApplyUpdate,
		OnDeleted:        a.list.ApplyDelete,
		OnSessionExpired: a.onSessionExpired,
	})
}
