package concordance

import (
	"github.com/sirupsen/logrus"

	"github.com/homier/probemap"
)

// DefaultCapacity is the initial size of both tables.
const DefaultCapacity = 191

type config struct {
	capacity int
	hashFunc probemap.HashFunc
	log      logrus.FieldLogger
}

type Option func(c *config)

// Override the initial table capacity.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// Override the table hash function.
func WithHashFunc(f probemap.HashFunc) Option {
	return func(c *config) {
		c.hashFunc = f
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = log
	}
}

func newConfig(opts ...Option) config {
	c := config{
		capacity: DefaultCapacity,
		hashFunc: probemap.HornerHash,
		log:      logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}
