package model

import (
	gModel "parish/shared/model"
)

const (
	TableName  = "priests"
	EntityName = "priest"
)

const (
	FieldID     = "id"
	FieldName   = "name"
	FieldActive = "active"
)

type Priest struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Title  string `db:"title"`
	Active bool   `db:"active"`
	gModel.Metadata
}
