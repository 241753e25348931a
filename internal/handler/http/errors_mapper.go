package http

import (
	"errors"
	"net/http"

	"github.com/appforge/console-server/internal/service"
	"github.com/appforge/console-server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrForbidden:                 http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrMaxAPIKeysReached:         http.StatusBadRequest,
	service.ErrNotChatApp:                http.StatusBadRequest,
	service.ErrValidationNameRequired:    http.StatusBadRequest,
	service.ErrValidationInvalidMode:     http.StatusBadRequest,
	service.ErrValidationInvalidStatus:   http.StatusBadRequest,
	service.ErrValidationInvalidHidden:   http.StatusBadRequest,
	service.ErrValidationInvalidSortBy:   http.StatusBadRequest,
	service.ErrValidationInvalidTagType:  http.StatusBadRequest,
	service.ErrValidationNoTagIDs:        http.StatusBadRequest,
	service.ErrValidationNoConversations: http.StatusBadRequest,

	store.ErrAppNotFound:              http.StatusNotFound,
	store.ErrAPITokenNotFound:         http.StatusNotFound,
	store.ErrAdvertisingNotFound:      http.StatusNotFound,
	store.ErrTagNotFound:              http.StatusNotFound,
	store.ErrTagBindingNotFound:       http.StatusNotFound,
	store.ErrConversationNotFound:     http.StatusNotFound,
	store.ErrLastConversationNotFound: http.StatusNotFound,
	store.ErrTargetNotFound:           http.StatusNotFound,
	store.ErrDefaultAppNotSet:         http.StatusNotFound,

	store.ErrTagBindingExists:  http.StatusConflict,
	store.ErrDuplicateAPIToken: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
