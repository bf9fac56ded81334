// Package discovery — mDNS: сервер книги объявляет себя в локальной
// сети, клиенты ищут, к кому присоединиться.
package discovery

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/grandcat/zeroconf"
)

const (
	// Service — mDNS-тип сервера книги.
	Service    = "_friendread._tcp"
	mdnsDomain = "local."
)

// Found — сервер, откликнувшийся на browse.
type Found struct {
	Instance  string
	Host      string
	Port      int
	Title     string
	Protected bool
}

// URL — адрес для friendread-клиента.
func (f Found) URL() string {
	return fmt.Sprintf("http://%s:%d", f.Host, f.Port)
}

// Announcer держит mDNS-регистрацию до Close.
type Announcer struct {
	log *log.Logger
	srv *zeroconf.Server
}

// Announce регистрирует сервер под именем FriendRead-<hostname>;
// TXT несёт заголовок книги и признак пароля.
func Announce(logger *log.Logger, port int, title string, protected bool) (*Announcer, error) {
	host, _ := os.Hostname()
	if host == "" {
		host = "reader"
	}
	txt := []string{
		"title=" + title,
		fmt.Sprintf("protected=%t", protected),
	}
	srv, err := zeroconf.Register(fmt.Sprintf("FriendRead-%s", host), Service, mdnsDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("register mdns: %w", err)
	}
	logger.Printf("announced %s on port %d", Service, port)
	return &Announcer{log: logger, srv: srv}, nil
}

func (a *Announcer) Close() {
	a.srv.Shutdown()
	a.log.Println("announce stopped")
}

// Browse собирает серверы, откликнувшиеся за время жизни ctx.
func Browse(ctx context.Context, logger *log.Logger) ([]Found, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("init mdns resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	done := make(chan struct{})
	var found []Found
	go func() {
		defer close(done)
		for entry := range entries {
			f := Found{
				Instance:  entry.Instance,
				Port:      entry.Port,
				Title:     txtValue(entry.Text, "title"),
				Protected: txtValue(entry.Text, "protected") == "true",
			}
			if len(entry.AddrIPv4) > 0 {
				f.Host = entry.AddrIPv4[0].String()
			}
			logger.Printf("found %s at %s:%d", entry.Instance, f.Host, f.Port)
			found = append(found, f)
		}
	}()

	if err := resolver.Browse(ctx, Service, mdnsDomain, entries); err != nil {
		return nil, fmt.Errorf("browse mdns: %w", err)
	}
	<-ctx.Done()
	<-done
	return found, nil
}

func txtValue(txt []string, key string) string {
	for _, kv := range txt {
		if strings.HasPrefix(kv, key+"=") {
			return strings.TrimPrefix(kv, key+"=")
		}
	}
	return ""
}
