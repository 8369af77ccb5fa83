// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const secureItemsTable = "secure_items"

func buildGetItem(key string) (string, []any, error) {
	return sq.Select("item_value").
		From(secureItemsTable).
		Where(sq.Eq{"item_key": key}).
		ToSql()
}

func buildUpsertItem(key string, value []byte, at time.Time) (string, []any, error) {
	return sq.Insert(secureItemsTable).
		Columns("item_key", "item_value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveItem(key string) (string, []any, error) {
	return sq.Delete(secureItemsTable).
		Where(sq.Eq{"item_key": key}).
		ToSql()
}
