package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, ConnectionException, MapCode("08006"))
	assert.Equal(t, ConnectionException, MapCode("08001"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityWarning, MapSeverity("warning"))
	assert.Equal(t, SeverityError, MapSeverity(""))
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", Severity: "ERROR"}
	wrapped := fmt.Errorf("add comment: %w", pgErr)

	assert.Equal(t, ForeignKeyViolation, ErrCode(wrapped))
	assert.Equal(t, ForeignKeyViolation, ErrCode(ConvertPgError(pgErr)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
	assert.Equal(t, Other, ErrCode(nil))
}

func TestConvert(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "category",
		ConstraintName: "category_name_key",
	}

	sqlErr := Convert(fmt.Errorf("wrap: %w", pgErr))
	require.NotNil(t, sqlErr)
	assert.Equal(t, UniqueViolation, sqlErr.Code)
	assert.Equal(t, "23505", sqlErr.DatabaseCode)
	assert.Equal(t, "category", sqlErr.TableName)

	var unwrapped *pgconn.PgError
	assert.True(t, errors.As(sqlErr, &unwrapped))
	assert.Same(t, pgErr, unwrapped)

	assert.Nil(t, Convert(errors.New("not a database error")))
}

func TestIsConstraintViolation(t *testing.T) {
	assert.True(t, IsConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, IsConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsConstraintViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsConstraintViolation(errors.New("boom")))
}

func TestIsConnectivity(t *testing.T) {
	assert.True(t, IsConnectivity(&pgconn.PgError{Code: "08006"}))
	assert.True(t, IsConnectivity(&pgconn.PgError{Code: "57P01"}))
	assert.True(t, IsConnectivity(fmt.Errorf("query: %w", context.DeadlineExceeded)))
	assert.False(t, IsConnectivity(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsConnectivity(errors.New("boom")))
	assert.False(t, IsConnectivity(nil))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "foreign key on comment post",
			err: &pgconn.PgError{
				Code:           "23503",
				TableName:      "comment",
				ConstraintName: "comment_post_id_fkey",
			},
			want: "The referenced Post does not exist",
		},
		{
			name: "foreign key on comment profile",
			err: &pgconn.PgError{
				Code:           "23503",
				TableName:      "comment",
				ConstraintName: "comment_user_profile_id_fkey",
			},
			want: "The referenced User Profile does not exist",
		},
		{
			name: "unique with named column",
			err: &pgconn.PgError{
				Code:           "23505",
				TableName:      "tags",
				ConstraintName: "unique_tags_name",
			},
			want: "A Tag with this Name already exists",
		},
		{
			name: "not null",
			err:  &pgconn.PgError{Code: "23502", TableName: "comment", ColumnName: "subject"},
			want: "The Subject is required",
		},
		{
			name: "check without column",
			err:  &pgconn.PgError{Code: "23514"},
			want: "One or more values do not meet required conditions",
		},
		{
			name: "connectivity without server error",
			err:  fmt.Errorf("acquire: %w", context.DeadlineExceeded),
			want: "The database is unavailable",
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
			want: "An error occurred while processing your request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestMachineCode(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", TableName: "comment", ConstraintName: "comment_post_id_fkey"}
	assert.Equal(t, "POST_NOT_FOUND", MachineCode(fk))

	notNull := &pgconn.PgError{Code: "23502", TableName: "tags", ColumnName: "name"}
	assert.Equal(t, "TAG_REQUIRED", MachineCode(notNull))

	assert.Equal(t, "RECORD_ERROR", MachineCode(errors.New("boom")))
}
