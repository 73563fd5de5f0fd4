package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == DriverSQLite {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string `gorm:"column:dflt_value"`
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			info := ColumnInfo{
				Field:   strings.ToLower(col.Name),
				Type:    strings.ToLower(col.Type),
				Null:    "YES",
				Default: col.DefaultVal,
			}
			if col.Notnull == 1 {
				info.Null = "NO"
			}
			if col.Pk > 0 {
				info.Key = "PRI"
			}
			columns = append(columns, info)
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// TableStatus is the result of checking one expected table.
type TableStatus struct {
	Table   string `json:"table"`
	Exists  bool   `json:"exists"`
	Columns int    `json:"columns"`
}

// SchemaReport summarizes CheckSchema.
type SchemaReport struct {
	Tables  []TableStatus `json:"tables"`
	Missing []string      `json:"missing,omitempty"`
}

// OK reports whether every expected table exists.
func (r SchemaReport) OK() bool {
	return len(r.Missing) == 0
}

// CheckSchema inspects the expected tables and reports which ones are missing.
// A table with no columns is treated as missing.
func CheckSchema(db *gorm.DB, tables []string) (SchemaReport, error) {
	report := SchemaReport{Tables: make([]TableStatus, 0, len(tables))}
	for _, table := range tables {
		cols, err := GetTableColumns(db, table)
		if err != nil && db.Dialector.Name() == DriverSQLite {
			return report, err
		}
		status := TableStatus{Table: table, Exists: err == nil && len(cols) > 0, Columns: len(cols)}
		if !status.Exists {
			report.Missing = append(report.Missing, table)
		}
		report.Tables = append(report.Tables, status)
	}
	return report, nil
}
