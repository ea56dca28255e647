package v1

import (
	ez_uuid "github.com/hearthledger/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}
