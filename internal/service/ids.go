package service

import (
	"math"

	"github.com/google/uuid"

	"food-delivery-api/pkg/apierror"
)

// checkID answers NotFound for identifiers that cannot name a stored record.
func checkID(id string, notFound string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apierror.NotFound(notFound)
	}
	return nil
}

// finite rejects NaN and infinities, which JSON cannot carry.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
