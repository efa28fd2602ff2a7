// Package api talks to the remote user-directory REST API.
//
// All operations are stateless request functions: they return data or a
// typed failure and never touch local state. Every failure is one of the
// sentinels in internal/common (ErrUnauthorized, ErrNotFound, ErrServer,
// ErrNetwork); raw transport errors never escape this package. There are
// no retries — a failed attempt surfaces immediately to the caller.
package api

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/client/models"
)

// Client defines the remote directory operations used by the controllers.
type Client interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (string, error)

	// ListPage fetches one page of records.
	ListPage(ctx context.Context, page int, token string) (models.Page, error)

	// UpdateRecord replaces the editable fields of a record.
	UpdateRecord(ctx context.Context, id int, fields models.RecordFields, token string) (models.Record, error)

	// DeleteRecord removes a record.
	DeleteRecord(ctx context.Context, id int, token string) error
}
