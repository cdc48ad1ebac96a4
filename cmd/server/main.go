package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avelkov/sweeper/internal/config"
	"github.com/avelkov/sweeper/internal/database"
	"github.com/avelkov/sweeper/internal/logging"
	"github.com/avelkov/sweeper/internal/middleware"
	"github.com/avelkov/sweeper/internal/repository"
)

//go:embed migrations
var migrations embed.FS

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func run() error {
	log, err := logging.New()
	if err != nil {
		return fmt.Errorf("unable to set up logging: %w", err)
	}

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	db, err := database.ConnectAndMigrate(mainCtx, migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()

	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("unable to load JWT keys: %w", err)
	}

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return fmt.Errorf("unable to read cookie config: %w", err)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		return fmt.Errorf("unable to read ws config: %w", err)
	}

	app := &application{
		log:     log,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     createRand(),
	}

	addr := config.Addr()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			app.ServeMux(),
			middleware.Auth(log, cookies),
			middleware.Cors(nil),
			middleware.Logging(log),
		),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
