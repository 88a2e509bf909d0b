package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	pgxViolation := &pgconn.PgError{Code: "23505", ConstraintName: "games_name_key"}
	pqViolation := &pq.Error{Code: "23505", Constraint: "customers_cpf_key"}

	cases := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "nil error", err: nil, constraint: "", want: false},
		{name: "pgx violation any constraint", err: pgxViolation, constraint: "", want: true},
		{name: "pgx violation matching constraint", err: pgxViolation, constraint: "games_name_key", want: true},
		{name: "pgx violation other constraint", err: pgxViolation, constraint: "customers_cpf_key", want: false},
		{name: "pgx wrapped violation", err: fmt.Errorf("create: %w", pgxViolation), constraint: "games_name_key", want: true},
		{name: "pgx other sqlstate", err: &pgconn.PgError{Code: "23503"}, constraint: "", want: false},
		{name: "pq violation matching constraint", err: pqViolation, constraint: "customers_cpf_key", want: true},
		{name: "pq violation other constraint", err: pqViolation, constraint: "games_name_key", want: false},
		{name: "stringified violation", err: errors.New(`duplicate key value violates unique constraint "games_name_key"`), constraint: "games_name_key", want: true},
		{name: "unrelated error", err: errors.New("connection reset"), constraint: "games_name_key", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsUniqueViolation(tc.err, tc.constraint))
		})
	}
}
