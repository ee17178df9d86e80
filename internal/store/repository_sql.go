package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// sqlRepository is the PostgreSQL-backed [Repository]. It reads the "users"
// and "products" tables created by the embedded migrations.
type sqlRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLRepository constructs a [Repository] over db.
func NewSQLRepository(db *DB, log *logger.Logger) Repository {
	log.Debug().Msg("creating sql repository")
	return &sqlRepository{db: db, logger: log}
}

// ListUsers returns every row of "users" ordered by id.
func (r *sqlRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := listUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.ListUsers").Msg("error executing query")
		return nil, classifyQueryError(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(
			&u.ID, &u.Name, &u.Surname, &u.Status, &u.DateCreated,
			&u.Credentials.Username, &u.Credentials.Passphrase,
			&u.Active, &u.Created, &u.Comment,
		); err != nil {
			log.Err(err).Str("func", "*sqlRepository.ListUsers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlRepository.ListUsers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrIteratingRows, err)
	}

	return users, nil
}

// ListProducts returns every row of "products" ordered by id.
func (r *sqlRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := listProductsQuery()
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.ListProducts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.ListProducts").Msg("error executing query")
		return nil, classifyQueryError(err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*sqlRepository.ListProducts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlRepository.ListProducts").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrIteratingRows, err)
	}

	return products, nil
}

// GetProduct returns the product with the given id or [ErrProductNotFound].
func (r *sqlRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := getProductQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.GetProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.GetProduct").Int64("id", id).Msg("error fetching product")
		return models.Product{}, classifyQueryError(err)
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.VolumeML,
		&p.Strength, &p.Status, &p.DateCreated, &p.Description,
	)
	return p, err
}
