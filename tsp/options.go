package tsp

import (
	"github.com/sirupsen/logrus"
)

// DefaultStartCity is the start city used when WithStartCity is not applied.
const DefaultStartCity = 0

// Option configures a NearestNeighbor optimizer at construction time.
type Option func(*NearestNeighbor)

// WithStartCity sets the city every tour begins at.
// The value is range-checked per problem in Optimize (ErrStartOutOfRange),
// since n is only known then.
func WithStartCity(start int) Option {
	return func(nn *NearestNeighbor) { nn.start = start }
}

// WithLogger routes the optimizer's debug records to logger.
// A nil logger keeps the current one.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(nn *NearestNeighbor) {
		if logger != nil {
			nn.log = logger
		}
	}
}
