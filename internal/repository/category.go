package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/model"
)

// CategoryRepository reads and writes post categories.
type CategoryRepository struct {
	db ConnProvider
}

func NewCategoryRepository(db ConnProvider) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll returns every category ordered by name.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category

	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT
				id,
				name
			FROM category
			ORDER BY name`)
		if err != nil {
			return err
		}

		categories, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get all categories: %w", err)
	}

	return categories, nil
}

// Add inserts c and writes the generated id back into c.ID.
func (r *CategoryRepository) Add(ctx context.Context, c *model.Category) error {
	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		var id int
		err := conn.QueryRow(ctx, `
			INSERT INTO category (name)
			VALUES (@name)
			RETURNING id`,
			pgx.NamedArgs{"name": c.Name}).Scan(&id)
		if err != nil {
			return err
		}

		c.ID = id
		return nil
	})
	if err != nil {
		return fmt.Errorf("add category: %w", err)
	}

	return nil
}

// GetCategoryByID returns the category, or nil if no category has that id.
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int) (*model.Category, error) {
	var category *model.Category

	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT
				id,
				name
			FROM category
			WHERE id = @id`,
			pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}

		c, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		category = &c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	return category, nil
}

// Delete removes the category. A missing id is not an error; a category
// still used by posts fails with the store's foreign key violation.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, `
			DELETE FROM category
			WHERE id = @id`,
			pgx.NamedArgs{"id": id})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}

	return nil
}

// Update renames the category with c.ID. A missing id is not an error.
func (r *CategoryRepository) Update(ctx context.Context, c model.Category) error {
	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, `
			UPDATE category
			SET name = @name
			WHERE id = @id`,
			pgx.NamedArgs{"id": c.ID, "name": c.Name})
		return err
	})
	if err != nil {
		return fmt.Errorf("update category %d: %w", c.ID, err)
	}

	return nil
}
