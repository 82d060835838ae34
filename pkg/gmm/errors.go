package gmm

import (
	"errors"
	"fmt"
)

// ErrUnsupportedQuantity indicates a scalar quantity (PGA, PGV, or PGD) was
// queried on a model that does not define it.
var ErrUnsupportedQuantity = errors.New("quantity not provided by model")

// UnsupportedQuantityError reports which quantity a model does not provide.
type UnsupportedQuantityError struct {
	// Model is the abbreviation of the model that was queried.
	Model string
	// Quantity is the queried quantity ("PGA", "PGV", or "PGD").
	Quantity string
}

func (e *UnsupportedQuantityError) Error() string {
	return fmt.Sprintf("model %s does not provide an estimate of %s", e.Model, e.Quantity)
}

func (e *UnsupportedQuantityError) Unwrap() error {
	return ErrUnsupportedQuantity
}
