// Package cli implements the interactive GestorVerde client: a REPL over
// the session store and the terrain/crop workflows.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gestorverde/gestorverde/internal/api"
	"github.com/gestorverde/gestorverde/internal/config"
	"github.com/gestorverde/gestorverde/internal/logging"
	"github.com/gestorverde/gestorverde/internal/models"
	"github.com/gestorverde/gestorverde/internal/session"
	"github.com/gestorverde/gestorverde/internal/tokens"
	"github.com/gestorverde/gestorverde/internal/upload"
	"github.com/gestorverde/gestorverde/internal/workflow"

	_ "modernc.org/sqlite"
)

// tokenSource breaks the construction cycle between the API client (which
// needs a token) and the session store (which needs the API client).
type tokenSource struct {
	store *session.Store
}

func (t *tokenSource) Token() string {
	if t.store == nil {
		return ""
	}
	return t.store.Token()
}

type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Store
	client   api.Client
	terrains *workflow.TerrainService
	crops    *workflow.CropService

	browsePager *workflow.Pager[models.Terrain]
	myPager     *workflow.Pager[models.Terrain]

	reader *bufio.Reader
	out    io.Writer

	closeFn func() error
}

// NewApp wires configuration, the local token database, the API client and
// the services, then rehydrates any persisted session.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := tokens.OpenDatabase(ctx, cfg.TokenDBPath)
	if err != nil {
		return nil, err
	}

	ts := &tokenSource{}
	client := api.NewHTTPClient(cfg, ts)
	store := session.NewStore(client, tokens.NewSQLiteRepository(db), log)
	ts.store = store

	if err := store.Rehydrate(ctx); err != nil {
		log.Warn(ctx, "could not rehydrate session", "error", err)
	}

	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:   cfg,
		log:      log,
		session:  store,
		client:   client,
		terrains: workflow.NewTerrainService(client, uploader, store, log),
		crops:    workflow.NewCropService(client, uploader, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closeFn:  db.Close,
	}
	a.browsePager = workflow.NewPager(client.AllTerrains, cfg.PageSize)
	a.myPager = workflow.NewPager(a.fetchMine, cfg.PageSize)
	return a, nil
}

func newUploader(ctx context.Context, cfg *config.Config) (upload.Uploader, error) {
	if cfg.UploadBackend == config.UploadBackendS3 {
		return upload.NewS3Uploader(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3BaseURL)
	}
	return upload.NewAssetHostUploader(cfg.UploadURL, cfg.UploadPreset, cfg.RequestTimeout), nil
}

// fetchMine scopes the list to the authenticated owner's email.
func (a *App) fetchMine(ctx context.Context, page, size int) (*models.Page[models.Terrain], error) {
	ident, ok := a.session.Identity()
	if !ok {
		return nil, workflow.ErrNotAuthenticated
	}
	return a.client.MyTerrains(ctx, ident.Email, page, size)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeFn != nil {
			_ = a.closeFn()
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// notify prints a one-line user-visible notice (the CLI's stand-in for a
// transient banner).
func (a *App) notify(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}
