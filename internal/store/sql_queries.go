package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-storefront/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"id", "name", "surname", "status", "date_created",
		"username", "passphrase", "active", "created", "comment",
	}
	productColumns = []string{
		"id", "name", "category", "price", "volume_ml",
		"strength", "status", "date_created", "description",
	}
)

func listUsersQuery() (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
}

func listProductsQuery() (string, []any, error) {
	return psql.Select(productColumns...).
		From(models.Product{}.TableName()).
		OrderBy("id").
		ToSql()
}

func getProductQuery(id int64) (string, []any, error) {
	return psql.Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
