// Package database wires up the sqlite connection and schema migrations.
//
// Entity-specific queries live in the subpackages:
//
//   - users: account lookup, creation, partial updates, cascade deletes
//   - books: catalog queries and owner-scoped mutations
//   - marks: per-user book marks with atomic upsert semantics
//
// Each subpackage exposes a Repository constructed from the shared *gorm.DB.
package database
