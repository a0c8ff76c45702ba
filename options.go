package mandel

import "log/slog"

// Option configures a Renderer.
//
// Example:
//
//	r := mandel.NewRenderer(
//	    mandel.WithWorkers(8),
//	    mandel.WithViewport(mandel.Viewport{RealMin: -0.8, RealMax: -0.65, ImagMin: 0.05, ImagMax: 0.15}),
//	)
//	defer r.Close()
type Option func(*options)

type options struct {
	workers   int
	chunk     int
	maxPixels int
	viewport  Viewport
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		viewport: DefaultViewport(),
	}
}

// WithWorkers sets the number of worker goroutines. 0 or less uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets how many consecutive pixels one work item covers.
// 0 or less lets the renderer choose from the image size and worker count.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunk = n
	}
}

// WithMaxPixels caps rows×columns; larger renders fail with ErrOutOfMemory
// before anything is allocated. By default there is no cap and only requests
// the runtime cannot satisfy fail. 0 or less removes the cap.
func WithMaxPixels(n int) Option {
	return func(o *options) {
		o.maxPixels = n
	}
}

// WithViewport sets the sampled region. Column counts follow its aspect ratio.
func WithViewport(v Viewport) Option {
	return func(o *options) {
		o.viewport = v
	}
}

// WithLogger sets the logger for one renderer, overriding Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
