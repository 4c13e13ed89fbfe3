package measure

// Option configures a Face during creation.
//
// Example:
//
//	face, err := measure.DefaultFace(measure.WithSize(28))
type Option func(*config)

// config holds optional configuration for Face creation.
type config struct {
	size float64
}

// defaultConfig returns the default face configuration.
func defaultConfig() config {
	return config{size: 20}
}

// WithSize sets the face size in points. The default is 20.
func WithSize(points float64) Option {
	return func(c *config) {
		if points > 0 {
			c.size = points
		}
	}
}
