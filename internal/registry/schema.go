package registry

import _ "embed"

// Schema holds the DDL for the registry tables.
//
//go:embed schema.sql
var Schema string
