package sqlerr

import "strings"

// Code is the category of a database error, derived from its SQLSTATE.
type Code string

const (
	Other                Code = "other"
	NotNullViolation     Code = "not_null_violation"
	ForeignKeyViolation  Code = "foreign_key_violation"
	UniqueViolation      Code = "unique_violation"
	CheckViolation       Code = "check_violation"
	ExclusionViolation   Code = "exclusion_violation"
	StringDataTruncation Code = "string_data_right_truncation"
	InvalidTextValue     Code = "invalid_text_representation"
	SerializationFailure Code = "serialization_failure"
	DeadlockDetected     Code = "deadlock_detected"
	QueryCanceled        Code = "query_canceled"
	ConnectionException  Code = "connection_exception"
	TooManyConnections   Code = "too_many_connections"
	AdminShutdown        Code = "admin_shutdown"
	UndefinedTable       Code = "undefined_table"
	UndefinedColumn      Code = "undefined_column"
)

var sqlStateCodes = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23P01": ExclusionViolation,
	"22001": StringDataTruncation,
	"22P02": InvalidTextValue,
	"40001": SerializationFailure,
	"40P01": DeadlockDetected,
	"57014": QueryCanceled,
	"53300": TooManyConnections,
	"57P01": AdminShutdown,
	"42P01": UndefinedTable,
	"42703": UndefinedColumn,
}

// MapCode maps a SQLSTATE to a Code. Every class 08 state is a
// connection exception; unknown states map to Other.
func MapCode(sqlState string) Code {
	if code, ok := sqlStateCodes[sqlState]; ok {
		return code
	}
	if strings.HasPrefix(sqlState, "08") {
		return ConnectionException
	}
	return Other
}

// Severity mirrors the severity Postgres attaches to an error report.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity maps the driver's severity string, defaulting to ERROR.
func MapSeverity(severity string) Severity {
	switch Severity(strings.ToUpper(severity)) {
	case SeverityFatal:
		return SeverityFatal
	case SeverityPanic:
		return SeverityPanic
	case SeverityWarning:
		return SeverityWarning
	case SeverityNotice:
		return SeverityNotice
	case SeverityDebug:
		return SeverityDebug
	case SeverityInfo:
		return SeverityInfo
	case SeverityLog:
		return SeverityLog
	default:
		return SeverityError
	}
}

// Error is a normalized database error.
//
// It keeps the original driver error so errors.As can still reach the
// *pgconn.PgError through Unwrap.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return string(e.Severity) + ": " + e.Message + " (SQLSTATE " + e.DatabaseCode + ")"
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
