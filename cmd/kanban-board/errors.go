package main

import (
	"errors"

	"github.com/forsitet/kanban-board/internal/domain"
)

// domainMessage returns the text shown to a terminal user for err.
func domainMessage(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		if de.Code == domain.ErrorCodeLoadFailed {
			return domain.LoadFailedMessage
		}
		return de.Message
	}
	return err.Error()
}
