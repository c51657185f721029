package service

import (
	"catalog-service/internal/domain"
)

// storeFailure passes deliberate domain errors through and wraps everything else
// with the operation and entity that failed
func storeFailure(op, entity string, err error) error {
	if domain.IsDomainError(err) {
		return err
	}
	return domain.NewStoreError(op, entity, err)
}
