package ioschema

import (
	"fmt"

	"github.com/akash-pandit/CACourses/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for schema operations attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for a failed GORM connection.
func GORMConnectionError(err error) error {
	msg := "Cannot open GORM connection over the pgx pool"

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("gorm connection: %w", err),
	}
}

// SchemaCreateError creates an error for a failed schema creation.
func SchemaCreateError(err error) error {
	msg := "Cannot create database schema"

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("create schema: %w", err),
	}
}

// SchemaMigrateError creates an error for a failed schema migration.
func SchemaMigrateError(err error) error {
	msg := "Cannot migrate database schema"

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("migrate schema: %w", err),
	}
}
