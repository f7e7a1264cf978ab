// Command jetgen generates go-jet models and table builders for price tracker database.
// NUMERIC columns are generated as decimal.NullDecimal so prices never pass through float64.
package main

import (
	"flag"
	"log"

	"github.com/go-jet/jet/v2/generator/metadata"
	"github.com/go-jet/jet/v2/generator/postgres"
	"github.com/go-jet/jet/v2/generator/template"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"

	_ "github.com/lib/pq"
)

func main() {
	dsn := flag.String("dsn", "", "database connection string")
	dest := flag.String("dest", "internal/platform/storage/gen", "destination directory")
	schema := flag.String("schema", "public", "database schema")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("missing -dsn")
	}

	err := postgres.GenerateDSN(*dsn, *schema, *dest,
		template.Default(pg.Dialect).
			UseSchema(func(schema metadata.Schema) template.Schema {
				return template.DefaultSchema(schema).
					UseModel(template.DefaultModel().
						UseTable(func(table metadata.Table) template.TableModel {
							return template.DefaultTableModel(table).
								UseField(func(column metadata.Column) template.TableModelField {
									field := template.DefaultTableModelField(column)
									if column.DataType.Name == "numeric" {
										field.Type = template.NewType(decimal.NullDecimal{})
									}
									return field
								})
						}),
					)
			}),
	)
	if err != nil {
		log.Fatalf("can't generate database code: %s", err)
	}
}
