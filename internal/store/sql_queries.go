// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Yurii Karpenko

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Snapshot table names. The schema itself is owned by the goose migrations
// in the migrations package.
const (
	contactsTable = "contacts"
	phonesTable   = "phones"
)

// newStatementBuilder returns a squirrel builder with the placeholder format
// matching the goose dialect the connection was opened with ($1, $2, ... for
// PostgreSQL, ? for SQLite).
func newStatementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (r *contactRepository) selectContactsQuery() sq.SelectBuilder {
	return r.builder.
		Select("id", "name", "birthday").
		From(contactsTable).
		OrderBy("position")
}

func (r *contactRepository) selectPhonesQuery() sq.SelectBuilder {
	return r.builder.
		Select("contact_id", "number").
		From(phonesTable).
		OrderBy("contact_id", "position")
}

func (r *contactRepository) insertContactQuery(id, name string, birthday *string, position int) sq.InsertBuilder {
	return r.builder.
		Insert(contactsTable).
		Columns("id", "name", "birthday", "position").
		Values(id, name, birthday, position)
}

func (r *contactRepository) insertPhoneQuery(contactID string, position int, number string) sq.InsertBuilder {
	return r.builder.
		Insert(phonesTable).
		Columns("contact_id", "position", "number").
		Values(contactID, position, number)
}
