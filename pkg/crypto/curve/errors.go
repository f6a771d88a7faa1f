package curve

import "errors"

var (
	// ErrUnsupportedCurve is returned when an unsupported curve is requested
	ErrUnsupportedCurve = errors.New("unsupported curve type")

	// ErrNoCurveSelected is returned when no curve was configured
	ErrNoCurveSelected = errors.New("no elliptic curve selected")

	// ErrInvalidCurve is returned when curve parameters are invalid
	ErrInvalidCurve = errors.New("invalid curve parameters")

	// ErrNilCurve is returned when a point is not bound to any curve
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrNilPoint is returned when a nil point is provided
	ErrNilPoint = errors.New("point cannot be nil")

	// ErrInvalidPoint is returned when a point is not on the curve
	ErrInvalidPoint = errors.New("invalid point: not on curve")

	// ErrCurveMismatch is returned when points from different curves are combined
	ErrCurveMismatch = errors.New("points belong to different curves")

	// ErrInvalidScalar is returned when a scalar is nil or negative
	ErrInvalidScalar = errors.New("invalid scalar value")

	// ErrInvalidEncoding is returned when unmarshaling fails
	ErrInvalidEncoding = errors.New("invalid point encoding")
)
