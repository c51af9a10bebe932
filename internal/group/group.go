package group

import "golang.org/x/text/unicode/norm"

// Group is the canonical in-memory representation of one group entry,
// backend-agnostic. A Group is produced fresh per result row and is owned
// exclusively by the scope that created it until it is marshaled into a
// caller buffer or cached by the enumerator for a retry.
type Group struct {
	// GID is the numeric group id.
	GID uint32

	// Name is the group name. Never empty for a fetched record.
	Name string

	// Passwd is the group password placeholder (conventionally "x").
	// It rides in the record, not in the wire layout.
	Passwd string

	// Members holds member user names in query order. May be empty.
	Members []string
}

// Normalize returns the NFC form of a caller-supplied name.
// All names are normalized before being bound into queries so that
// lookups are insensitive to the caller's Unicode composition form.
func Normalize(name string) string {
	return norm.NFC.String(name)
}
