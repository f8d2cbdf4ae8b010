// Package headless is a pure-Go engine that honors the engine contract
// without a real browser: callbacks run only inside DoMessageLoopWork, pages
// are rasterized with gg and delivered as bitmaps or shared textures.
package headless

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/logging"
)

// Options configures an engine.
type Options struct {
	// Process receives the context-ready signal and pump requests.
	Process port.BrowserProcessHandler
	// Textures backs shared-texture rendering. A private pool is used when nil.
	Textures *TexturePool
	// Now is the clock used for delayed tasks.
	Now func() time.Time
	// UserAgent and Locale seed the preferences of every request context.
	UserAgent string
	Locale    string
}

type task struct {
	due time.Time
	fn  func()
}

// Engine implements port.Engine.
type Engine struct {
	ctx      context.Context
	process  port.BrowserProcessHandler
	textures *TexturePool
	now      func() time.Time
	defaults map[string]string

	mu       sync.Mutex
	tasks    []task
	browsers map[entity.BrowserID]*browser
	nextID   entity.BrowserID
	shutdown bool
}

var _ port.Engine = (*Engine)(nil)

// New creates an engine. The context-initialized notification is delivered on
// the first pump.
func New(ctx context.Context, opts Options) *Engine {
	e := &Engine{
		ctx:      logging.WithComponent(ctx, "headless"),
		process:  opts.Process,
		textures: opts.Textures,
		now:      opts.Now,
		browsers: make(map[entity.BrowserID]*browser),
		defaults: make(map[string]string),
	}
	if opts.UserAgent != "" {
		e.defaults[prefUserAgent] = opts.UserAgent
	}
	if opts.Locale != "" {
		e.defaults[prefAcceptLanguages] = opts.Locale
	}
	if e.textures == nil {
		e.textures = NewTexturePool()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.process != nil {
		e.post(0, e.process.OnContextInitialized)
	}
	return e
}

// Textures returns the pool accelerated paints are published to. It is the
// importer to hand to the controller.
func (e *Engine) Textures() *TexturePool {
	return e.textures
}

func (e *Engine) CreateBrowser(ctx context.Context, req port.CreateBrowserRequest) bool {
	log := logging.FromContext(ctx)
	if req.Client == nil {
		log.Error().Msg("create browser without a client")
		return false
	}
	if !req.Window.Windowless {
		log.Error().Str("parent", req.Window.Parent.Kind.String()).Msg("headless engine only supports windowless browsers")
		return false
	}

	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		return false
	}
	e.nextID++
	id := e.nextID
	e.mu.Unlock()

	req.Client.AddRef()
	b := newBrowser(e, id, req)
	e.post(0, func() { b.create(req.RequestContext) })

	log.Debug().Int32("browser_id", int32(id)).Str("url", req.URL).Msg("browser create queued")
	return true
}

func (e *Engine) Host(id entity.BrowserID) (port.BrowserHost, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.browsers[id]
	if !ok {
		return nil, false
	}
	return b, true
}

// DoMessageLoopWork runs every task that is due. Tasks posted while running
// wait for the next call.
func (e *Engine) DoMessageLoopWork() {
	e.mu.Lock()
	now := e.now()
	var ready []func()
	var later []task
	for _, t := range e.tasks {
		if t.due.After(now) {
			later = append(later, t)
			continue
		}
		ready = append(ready, t.fn)
	}
	e.tasks = later
	e.mu.Unlock()

	for _, fn := range ready {
		fn()
	}
}

// Pending returns the number of queued tasks.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.tasks)
}

func (e *Engine) Shutdown() {
	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		return
	}
	e.shutdown = true
	e.tasks = nil
	live := make([]*browser, 0, len(e.browsers))
	for _, b := range e.browsers {
		live = append(live, b)
	}
	e.browsers = make(map[entity.BrowserID]*browser)
	e.mu.Unlock()

	log := logging.FromContext(e.ctx)
	for _, b := range live {
		log.Warn().Int32("browser_id", int32(b.id)).Msg("browser still alive at shutdown")
		e.textures.drop(b.id)
		b.client.Release()
	}
	log.Debug().Msg("headless engine shut down")
}

// PostTask queues fn for the first DoMessageLoopWork after delay.
func (e *Engine) PostTask(delay time.Duration, fn func()) error {
	if !e.post(delay, fn) {
		return port.ErrEngineShutdown
	}
	return nil
}

// post queues fn and asks the host for a pump after delay. It reports false
// once the engine is shut down.
func (e *Engine) post(delay time.Duration, fn func()) bool {
	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		return false
	}
	e.tasks = append(e.tasks, task{due: e.now().Add(delay), fn: fn})
	e.mu.Unlock()

	if e.process != nil {
		e.process.OnScheduleMessagePumpWork(delay.Milliseconds())
	}
	return true
}

func (e *Engine) register(b *browser) {
	e.mu.Lock()
	e.browsers[b.id] = b
	e.mu.Unlock()
}

func (e *Engine) unregister(id entity.BrowserID) {
	e.mu.Lock()
	delete(e.browsers, id)
	e.mu.Unlock()
	e.textures.drop(id)
}
