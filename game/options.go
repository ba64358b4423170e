package game

import (
	"log/slog"

	"github.com/royalcat/geostash/board"
)

type options struct {
	tileWidth        float64
	spawnProbability float64
	visibilityRadius int

	renderer Renderer
	storage  Storage
	logger   *slog.Logger
}

type Option func(*options)

func loadOptions(opts ...Option) options {
	options := options{
		tileWidth:        board.DefaultTileWidth,
		spawnProbability: defaultSpawnProbability,
		visibilityRadius: defaultVisibilityRadius,
		renderer:         NopRenderer{},
		logger:           slog.Default(),
	}
	for _, o := range opts {
		o(&options)
	}
	return options
}

// Default: 1e-4 degrees
func WithTileWidth(width float64) Option {
	return func(o *options) { o.tileWidth = width }
}

// Default: 0.1
func WithSpawnProbability(probability float64) Option {
	return func(o *options) { o.spawnProbability = probability }
}

// Default: 8
func WithVisibilityRadius(radius int) Option {
	return func(o *options) { o.visibilityRadius = radius }
}

func WithRenderer(r Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithStorage enables persistence. Without it the game is purely
// in-memory.
func WithStorage(s Storage) Option {
	return func(o *options) { o.storage = s }
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.logger = log }
}
