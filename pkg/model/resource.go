package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is the common surface of catalog documents (flights, hotels, cars,
// travel packages) used by the generic store and handlers.
type Resource interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
	// Stamp sets UpdatedAt, and CreatedAt too on first persistence.
	Stamp(now time.Time)
	// Trim normalizes string fields and fills schema defaults.
	Trim()
}

// Patch applies a partial update onto an existing document.
type Patch[T any] interface {
	ApplyTo(*T)
}

// PatchFor ties a patch struct to its pointer form, which carries ApplyTo.
type PatchFor[T any, U any] interface {
	*U
	Patch[T]
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func applyStr(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

func applyTime(src *time.Time, dst *time.Time) {
	if src != nil {
		*dst = *src
	}
}
