// Package models defines the directory record types shared by the API
// client and the controllers.
package models

// Record is a single directory entry as served by the remote API.
// ID is server-assigned and immutable; all other fields are editable.
type Record struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar"`
}

// RecordFields carries the mutable part of a Record, as sent on update.
type RecordFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar"`
}

// Fields returns the editable portion of the record.
func (r Record) Fields() RecordFields {
	return RecordFields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		AvatarURL: r.AvatarURL,
	}
}

// WithFields returns a copy of the record with the editable fields replaced.
func (r Record) WithFields(f RecordFields) Record {
	r.FirstName = f.FirstName
	r.LastName = f.LastName
	r.Email = f.Email
	r.AvatarURL = f.AvatarURL
	return r
}

// Page is one fetched page of records together with its position in the
// server-side pagination.
type Page struct {
	Records    []Record
	Number     int
	TotalPages int
}
