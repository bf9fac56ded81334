package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/neocapy/friend-reader/internal/auth/secret"
	"github.com/neocapy/friend-reader/internal/config"
	"github.com/neocapy/friend-reader/internal/discovery"
	"github.com/neocapy/friend-reader/internal/infra/library"
	"github.com/neocapy/friend-reader/internal/ingest"
	"github.com/neocapy/friend-reader/internal/presence"
	"github.com/neocapy/friend-reader/internal/transport/web"
)

type App struct {
	config   *config.Config
	server   *web.Server
	log      *log.Logger
	library  *library.Library
	presence *presence.Store
	announce *discovery.Announcer
}

// Build собирает сервер вокруг одной книги: парсинг файла, реестр
// присутствия, HTTP-слой, при включённом Announce — mDNS.
func Build(ctx context.Context, cfg *config.Config, bookPath string) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	libraryLog := log.New(base.Writer(), base.Prefix()+"[library] ", base.Flags())
	presenceLog := log.New(base.Writer(), base.Prefix()+"[presence] ", base.Flags())

	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("load book")
	doc, images, err := ingest.Load(bookPath)
	if err != nil {
		return nil, fmt.Errorf("failed load book: %w", err)
	}
	lib := library.New(libraryLog, doc, images)

	store := presence.NewStore(presenceLog)
	gate := secret.NewGate(cfg.Password)
	if gate.Required() {
		base.Println("password protection enabled")
	}

	base.Println("init Server")
	server := web.New(serverLog, cfg, lib, store, gate)
	base.Println("Server is initialized")

	app := &App{
		config:   cfg,
		server:   server,
		log:      base,
		library:  lib,
		presence: store,
	}

	if cfg.Announce {
		announceLog := log.New(base.Writer(), base.Prefix()+"[mdns] ", base.Flags())
		port, err := addrPort(cfg.Addr)
		if err != nil {
			base.Printf("announce disabled: %v", err)
		} else if ann, err := discovery.Announce(announceLog, port, lib.Title(), gate.Required()); err != nil {
			// сервер живёт и без объявления
			base.Printf("announce failed: %v", err)
		} else {
			app.announce = ann
		}
	}

	base.Println("build ended")
	return app, nil
}

// Run блокируется до отмены ctx, затем гасит всё в обратном порядке.
func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.presence.RunSweeper(ctx)
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	if a.announce != nil {
		a.announce.Close()
	}

	return nil
}

// addrPort достаёт порт из listen-адреса вида host:port или :port.
func addrPort(addr string) (int, error) {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, fmt.Errorf("parse addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("parse addr %q: %w", addr, err)
	}
	return port, nil
}
