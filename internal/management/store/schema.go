package store

import _ "embed"

// Schema holds the DDL for the management request tables.
//
//go:embed schema.sql
var Schema string
