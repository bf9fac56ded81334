package reader

import (
	"context"
	"log"
	"time"

	"github.com/neocapy/friend-reader/internal/client"
	"github.com/neocapy/friend-reader/internal/domain"
)

// syncInterval — общий такт протокола присутствия: период heartbeat-push
// и период pull чужих позиций.
const syncInterval = 250 * time.Millisecond

// Syncer гоняет протокол присутствия в фоне, не трогая тик рендера.
// Offer и Latest зовутся только из горутины сессии; с push/pull
// горутинами они общаются через однослотовые каналы, где свежее
// значение вытесняет залежавшееся.
type Syncer struct {
	log  *log.Logger
	api  *client.Client
	name string
	// цвет нормализован на входе в сессию
	color string

	pushCh chan domain.Position
	pullCh chan map[string]domain.ConnectedUser

	// состояние дебаунса; только горутина сессии
	lastRange  [2]int
	hasSent    bool
	lastPushAt time.Time
	now        func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

func newSyncer(api *client.Client, name, color string, logger *log.Logger) *Syncer {
	return &Syncer{
		log:    logger,
		api:    api,
		name:   name,
		color:  color,
		pushCh: make(chan domain.Position, 1),
		pullCh: make(chan map[string]domain.ConnectedUser, 1),
		now:    time.Now,
	}
}

// Start запускает push- и pull-горутины до Stop.
func (y *Syncer) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	y.cancel = cancel
	y.done = make(chan struct{}, 2)
	go y.pusher(ctx)
	go y.puller(ctx)
}

func (y *Syncer) Stop() {
	if y.cancel == nil {
		return
	}
	y.cancel()
	<-y.done
	<-y.done
	y.cancel = nil
}

// Offer решает, пора ли публиковать диапазон: сразу при изменении,
// иначе heartbeat каждые syncInterval. Возвращает, был ли push поставлен
// в очередь.
func (y *Syncer) Offer(first, last int) bool {
	r := [2]int{first, last}
	changed := !y.hasSent || r != y.lastRange
	due := !y.hasSent || y.now().Sub(y.lastPushAt) >= syncInterval
	if !changed && !due {
		return false
	}

	pos := domain.Position{
		StartElement: first,
		StartPercent: 0.0,
		EndElement:   last,
		EndPercent:   1.0,
	}
	select {
	case y.pushCh <- pos:
	default:
		// вытесняем несъеденный push
		select {
		case <-y.pushCh:
		default:
		}
		select {
		case y.pushCh <- pos:
		default:
		}
	}

	y.lastRange = r
	y.hasSent = true
	y.lastPushAt = y.now()
	return true
}

// Latest снимает последний удачный pull, если он был. Неудачные pull
// сюда не попадают, так что потребитель продолжает видеть старый срез.
func (y *Syncer) Latest() (map[string]domain.ConnectedUser, bool) {
	select {
	case users := <-y.pullCh:
		return users, true
	default:
		return nil, false
	}
}

func (y *Syncer) pusher(ctx context.Context) {
	defer func() { y.done <- struct{}{} }()
	for {
		select {
		case <-ctx.Done():
			return
		case pos := <-y.pushCh:
			cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := y.api.UpdatePosition(cctx, y.name, y.color, pos); err != nil {
				y.log.Printf("push position: %v", err)
			}
			cancel()
		}
	}
}

func (y *Syncer) puller(ctx context.Context) {
	defer func() { y.done <- struct{}{} }()
	t := time.NewTicker(syncInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			users, err := y.api.Positions(cctx)
			cancel()
			if err != nil {
				y.log.Printf("pull positions: %v", err)
				continue
			}
			select {
			case y.pullCh <- users:
			default:
				select {
				case <-y.pullCh:
				default:
				}
				select {
				case y.pullCh <- users:
				default:
				}
			}
		}
	}
}
