// Package store provides read-only SQLite access for group resolution.
//
// The store is a thin row source: it opens the backing database, resolves
// named query text, and executes parameterized queries. All record
// interpretation lives in internal/resolve.
//
// # Named Queries
//
// Every operation's SQL is resolved by name (setgrent, getgrnam_r,
// getgrgid_r, initgroups_dyn, get_users). A deployment may override any
// of them by shipping a queries(name, sql) table inside the database
// itself - the convention the original nss-sqlite databases use - and
// built-in defaults cover databases that only carry data tables.
//
// # Database Configuration
//
//   - query_only=ON: the resolver never writes; enforce it
//   - busy_timeout=5000: wait for locks up to 5 seconds
//
// The pool keeps two idle connections: enumeration holds its full-scan
// rows open while per-group membership queries run on a second
// connection.
package store
