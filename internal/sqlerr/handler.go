package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the mapped Code for a given error.
//
// Behavior:
//   - If err unwraps into *sqlerr.Error, return its Code.
//   - If err unwraps into *pgconn.PgError, map its SQLSTATE.
//   - Otherwise return Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

// Convert finds the Postgres error in err's chain and normalizes it.
// It returns nil when the chain holds no server error.
func Convert(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}
	return nil
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// IsConstraintViolation reports whether err is an integrity constraint
// failure (class 23) raised by an insert or update.
func IsConstraintViolation(err error) bool {
	switch ErrCode(err) {
	case NotNullViolation, ForeignKeyViolation, UniqueViolation, CheckViolation, ExclusionViolation:
		return true
	}
	return false
}

// IsConnectivity reports whether err means the store could not be reached
// or the call ran out of time, as opposed to the statement being rejected.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}

	switch ErrCode(err) {
	case ConnectionException, TooManyConnections, AdminShutdown, QueryCanceled:
		return true
	}

	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// MachineCode creates an application error code of the form
// <DOMAIN>_<ACTION>, e.g. comment + ForeignKeyViolation => POST_NOT_FOUND.
//
// The domain is the referenced entity for foreign keys and the table
// otherwise. These codes are meant for machines, not humans.
func MachineCode(err error) string {
	sqlErr := Convert(err)
	if sqlErr == nil {
		return "RECORD_ERROR"
	}

	domain := sqlErr.TableName
	if sqlErr.Code == ForeignKeyViolation {
		if column := constraintColumn(sqlErr); strings.HasSuffix(column, "_id") {
			domain = strings.TrimSuffix(column, "_id")
		}
	}
	return generateErrorCode(domain, sqlErr.Code)
}

func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "TAGS" -> "TAG".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// Message produces a human-readable sentence for err.
//
// Errors that aren't Postgres server errors get a generic sentence so
// driver internals never leak into user-facing text.
func Message(err error) string {
	sqlErr := Convert(err)
	if sqlErr == nil {
		if IsConnectivity(err) {
			return "The database is unavailable"
		}
		return "An error occurred while processing your request"
	}
	return formatUserFriendlyMessage(sqlErr)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	column := sqlErr.ColumnName
	if column == "" {
		column = constraintColumn(sqlErr)
	}
	entityName := getEntityName(sqlErr.TableName, column)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		// "The referenced Post does not exist"
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		if column != "" {
			return fmt.Sprintf("A %s with this %s already exists",
				getEntityName(sqlErr.TableName, ""), humanizeText(column))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case StringDataTruncation:
		return "One or more values are too long"

	default:
		if IsConnectivity(sqlErr) {
			return "The database is unavailable"
		}
		return "An error occurred while processing your request"
	}
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. A column ending in "_id" names the entity: "user_profile_id" -> "User Profile".
//  2. Otherwise the table name, singularized if it ends with "s".
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// constraintColumn infers the column from a constraint name.
//
// Postgres' default names are <table>_<column>_fkey and <table>_<column>_key;
// "unique_<table>_<column>" and "..._ukey" are accepted too.
func constraintColumn(sqlErr *Error) string {
	name := sqlErr.ConstraintName
	if name == "" {
		return ""
	}

	if sqlErr.TableName != "" && strings.HasPrefix(name, sqlErr.TableName+"_") {
		rest := strings.TrimPrefix(name, sqlErr.TableName+"_")
		for _, suffix := range []string{"_fkey", "_ukey", "_key"} {
			if strings.HasSuffix(rest, suffix) {
				return strings.TrimSuffix(rest, suffix)
			}
		}
	}

	if strings.HasPrefix(name, "unique_") {
		parts := strings.Split(name, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyPattern.FindStringSubmatch(name); len(matches) > 1 {
		return matches[1]
	}

	return ""
}
