// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic SQLSTATE codes from the database driver into a
// small set of categories (constraint violations, connectivity) and
// phrases them as human-readable messages. Repositories return driver
// errors untouched; callers use this package to decide what they mean.
package sqlerr
