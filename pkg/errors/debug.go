package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrorDump flattens an error chain for structured logs.
type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`
	Retryable  bool   `json:"retryable,omitempty"`
	Details    any    `json:"details,omitempty"`

	Chain []string `json:"chain,omitempty"`

	PG *PGFields `json:"pg,omitempty"`
}

// PGFields are the Postgres diagnostics from either driver (pgx or lib/pq).
type PGFields struct {
	Code       string `json:"code,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Table      string `json:"table,omitempty"`
	Column     string `json:"column,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Message    string `json:"message,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error()}
	if te := As(err); te != nil {
		d.Code = te.Code()
		d.Retryable = MetadataFor(d.Code).Retryable
		d.Details = te.Details()
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}
	d.PG = postgresFields(err)
	return d
}

func postgresFields(err error) *PGFields {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return &PGFields{
			Code:       pgxErr.Code,
			Constraint: pgxErr.ConstraintName,
			Table:      pgxErr.TableName,
			Column:     pgxErr.ColumnName,
			Detail:     pgxErr.Detail,
			Message:    pgxErr.Message,
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &PGFields{
			Code:       string(pqErr.Code),
			Constraint: pqErr.Constraint,
			Table:      pqErr.Table,
			Column:     pqErr.Column,
			Detail:     pqErr.Detail,
			Message:    pqErr.Message,
		}
	}
	return nil
}

// LogFields renders the dump as logger fields; Postgres keys appear only for driver errors.
func (d ErrorDump) LogFields() map[string]any {
	fields := map[string]any{
		"error":       d.TopMessage,
		"error_code":  d.Code,
		"error_chain": d.Chain,
		"retryable":   d.Retryable,
	}
	if d.Details != nil {
		fields["error_details"] = d.Details
	}
	if d.PG != nil {
		fields["pg_code"] = d.PG.Code
		fields["pg_constraint"] = d.PG.Constraint
		fields["pg_table"] = d.PG.Table
		fields["pg_column"] = d.PG.Column
		fields["pg_detail"] = d.PG.Detail
		fields["pg_message"] = d.PG.Message
	}
	return fields
}
