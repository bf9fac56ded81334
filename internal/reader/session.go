// Package reader — ядро клиента чтения: сессия со state machine
// Login -> Loading -> Reading / Error, тиковый конвейер вёрстки,
// прокрутки и следования, фоновая синхронизация присутствия.
// Пакет не знает про конкретный GUI: рендер зовёт Tick с вводом
// и геометрией окна и рисует полученный Frame.
package reader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/neocapy/friend-reader/internal/auth/secret"
	"github.com/neocapy/friend-reader/internal/client"
	"github.com/neocapy/friend-reader/internal/domain"
	"github.com/neocapy/friend-reader/internal/layout"
)

// Options — параметры входа в сессию.
type Options struct {
	ServerURL string
	Name      string
	Color     string
	// Password — сырой пароль; наружу уходит только его SHA-256.
	Password string

	Measurer layout.Measurer
	// CachePath — файл bbolt-кэша; пустой путь отключает кэш.
	CachePath string
	Logger    *log.Logger
}

// Session living на одной горутине UI: Tick и все сеттеры не
// потокобезопасны. Сеть живёт в Syncer и не блокирует тик.
type Session struct {
	log    *log.Logger
	api    *client.Client
	cache  *client.Cache
	engine *layout.Engine

	name  string
	color string

	state   State
	lastErr string
	offline bool

	doc    *domain.Document
	prefs  Prefs
	prev   layout.Params
	elems  []layout.Element
	scroll float64

	peers  map[string]domain.ConnectedUser
	follow Follower

	syncer *Syncer
	cancel context.CancelFunc
}

// NewSession валидирует identity и готовит сессию в состоянии Login.
func NewSession(opts Options) (*Session, error) {
	name := strings.TrimSpace(opts.Name)
	if !domain.ValidName(name) {
		return nil, errors.New("display name cannot be empty")
	}
	if opts.Measurer == nil {
		return nil, errors.New("measurer is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	hash := ""
	if opts.Password != "" {
		hash = secret.Hash(opts.Password)
	}

	s := &Session{
		log:    logger,
		api:    client.New(opts.ServerURL, hash, logger),
		engine: layout.NewEngine(opts.Measurer),
		name:   name,
		color:  domain.NormalizeColor(opts.Color),
		state:  StateLogin,
		prefs:  DefaultPrefs(),
		peers:  map[string]domain.ConnectedUser{},
	}

	if opts.CachePath != "" {
		cache, err := client.OpenCache(opts.CachePath, logger)
		if err != nil {
			// кэш — удобство, не условие входа
			logger.Printf("cache unavailable: %v", err)
		} else {
			s.cache = cache
		}
	}
	return s, nil
}

// Connect забирает документ и переводит сессию в Reading. При недоступном
// сервере и тёплом кэше переходит в оффлайн-чтение без синхронизации.
// Ошибка сервера (пароль, 5xx) — терминальная: состояние Error.
func (s *Session) Connect(ctx context.Context) error {
	s.state = StateLoading

	doc, err := s.api.Connect(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrConnectivity) && s.cache != nil {
			if cached, cerr := s.cache.Document(s.api.BaseURL()); cerr == nil && cached != nil {
				s.log.Printf("server unreachable, reading %s from cache", s.api.BaseURL())
				s.doc = cached
				s.offline = true
				s.state = StateReading
				return nil
			}
		}
		s.state = StateError
		s.lastErr = connectError(err)
		return err
	}

	s.doc = doc
	if s.cache != nil {
		if err := s.cache.PutDocument(s.api.BaseURL(), doc); err != nil {
			s.log.Printf("cache document: %v", err)
		}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.syncer = newSyncer(s.api, s.name, s.color, s.log)
	s.syncer.Start(runCtx)

	s.state = StateReading
	return nil
}

// Close останавливает фон и освобождает кэш. Сессию после этого
// можно только выбросить.
func (s *Session) Close() {
	if s.syncer != nil {
		s.syncer.Stop()
		s.syncer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.cache != nil {
		_ = s.cache.Close()
		s.cache = nil
	}
}

// Tick — один шаг конвейера: перевёрстка с якорем, приём чужих позиций,
// публикация своей, шаг следования, ручной ввод, клампинг прокрутки.
func (s *Session) Tick(in Input, viewportW, viewportH float64) Frame {
	if s.state != StateReading {
		return Frame{State: s.state, Err: s.lastErr}
	}

	maxAvail := viewportW - MinimapWidth - 2*MinSideMargin
	contentWidth := math.Min(math.Max(s.prefs.ContentWidth, MinContentWidth), maxAvail)

	params := layout.Params{
		Width:            contentWidth,
		Font:             s.prefs.FontFamily,
		Size:             s.prefs.FontSize,
		ParagraphSpacing: s.prefs.ParagraphSpacing,
	}

	if len(s.elems) == 0 || params.Differs(s.prev) {
		anchor, anchored := layout.CaptureAnchor(s.elems, s.scroll+viewportH/2)
		s.elems = s.engine.Layout(s.doc, params)
		s.prev = params
		if anchored {
			if off, ok := layout.RestoreScroll(s.elems, anchor, viewportH); ok {
				s.scroll = off
			}
		}
	}

	total := layout.TotalHeight(s.elems, params.ParagraphSpacing)

	if s.syncer != nil {
		if users, ok := s.syncer.Latest(); ok {
			s.peers = users
		}
	}

	first, last := layout.VisibleRange(s.elems, s.scroll, viewportH)
	if s.syncer != nil {
		s.syncer.Offer(first, last)
	}

	// следование: цель — верх стартового элемента ведущего; диапазон
	// из чужой вёрстки может не существовать в нашей — тогда стоим
	if name, ok := s.follow.Target(); ok {
		if peer, exists := s.peers[name]; exists {
			idx := peer.Position.StartElement
			if idx >= 0 && idx < len(s.elems) {
				s.scroll = FollowStep(s.scroll, s.elems[idx].Y)
			}
		}
	}

	// ручной ввод отменяет следование; дрожание тачпада в пределах
	// мёртвой зоны — нет
	if math.Abs(in.Wheel) > wheelDeadzone {
		s.follow.Cancel()
	}
	s.scroll -= in.Wheel
	if in.ArrowDown {
		s.scroll += arrowStep
		s.follow.Cancel()
	}
	if in.ArrowUp {
		s.scroll -= arrowStep
		s.follow.Cancel()
	}
	if in.PageDown {
		s.scroll += viewportH * pageFraction
		s.follow.Cancel()
	}
	if in.Escape {
		s.follow.Cancel()
	}

	s.scroll = math.Min(math.Max(s.scroll, 0), math.Max(0, total-viewportH+overscroll))

	first, last = layout.VisibleRange(s.elems, s.scroll, viewportH)
	target, _ := s.follow.Target()
	return Frame{
		State:        s.state,
		Offline:      s.offline,
		ContentWidth: contentWidth,
		Scroll:       s.scroll,
		TotalHeight:  total,
		First:        first,
		Last:         last,
		Ratio:        progressRatio(first, len(s.doc.Elements)),
		Peers:        s.buildPeers(target),
		FollowTarget: target,
	}
}

// JumpToRatio — клик по мини-карте: прыжок к элементу на доле ratio.
func (s *Session) JumpToRatio(ratio float64) {
	if s.state != StateReading || len(s.doc.Elements) == 0 {
		return
	}
	ratio = math.Min(math.Max(ratio, 0), 1)
	idx := int(ratio * float64(len(s.doc.Elements)))
	if idx < len(s.elems) {
		s.scroll = s.elems[idx].Y
		s.follow.Cancel()
	}
}

// Follow включает следование за читателем по имени; за собой — выключает.
func (s *Session) Follow(name string) {
	if name == s.name {
		s.follow.Cancel()
		return
	}
	s.follow.Follow(name)
}

func (s *Session) StopFollow() { s.follow.Cancel() }

// LoadImage — картинка документа: сперва кэш, затем сеть.
func (s *Session) LoadImage(ctx context.Context, id string) ([]byte, error) {
	if s.cache != nil {
		if data, err := s.cache.Image(s.api.BaseURL(), id); err == nil && data != nil {
			return data, nil
		}
	}
	if s.offline {
		return nil, fmt.Errorf("%w: offline, image %s not cached", domain.ErrConnectivity, id)
	}
	data, _, err := s.api.Image(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.PutImage(s.api.BaseURL(), id, data); err != nil {
			s.log.Printf("cache image %s: %v", id, err)
		}
	}
	return data, nil
}

func (s *Session) State() State               { return s.state }
func (s *Session) Err() string                { return s.lastErr }
func (s *Session) Document() *domain.Document { return s.doc }
func (s *Session) Prefs() Prefs               { return s.prefs }

// SetPrefs применяет настройки со следующего тика.
func (s *Session) SetPrefs(p Prefs) {
	p.sanitize()
	s.prefs = p
}

// SetContentWidth — ручка ширины колонки (перетаскивание в UI).
func (s *Session) SetContentWidth(w float64) {
	s.prefs.ContentWidth = math.Max(w, MinContentWidth)
}

func (s *Session) buildPeers(followTarget string) []Peer {
	if len(s.peers) == 0 {
		return nil
	}
	total := len(s.doc.Elements)
	out := make([]Peer, 0, len(s.peers))
	for _, u := range s.peers {
		out = append(out, Peer{
			Name:      u.Name,
			Color:     u.Color,
			Start:     u.Position.StartElement,
			End:       u.Position.EndElement,
			Ratio:     progressRatio(u.Position.StartElement, total),
			Self:      u.Name == s.name,
			Following: u.Name == followTarget,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func progressRatio(idx, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Min(math.Max(float64(idx)/float64(total), 0), 1)
}

// connectError — терминальное сообщение для экрана ошибки.
func connectError(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauth):
		return "Connection failed: wrong or missing password"
	case errors.Is(err, domain.ErrNotFound):
		return "Connection failed: server has no document"
	default:
		return fmt.Sprintf("Connection failed: %v", err)
	}
}
