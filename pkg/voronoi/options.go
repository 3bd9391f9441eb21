package voronoi

import "github.com/0x0FACED/fortune-sweep/pkg/logger"

type Option func(*options)

type options struct {
	logger *logger.ZapLogger
}

// WithLogger - логировать ход алгоритма. По умолчанию логи не пишутся.
func WithLogger(l *logger.ZapLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
