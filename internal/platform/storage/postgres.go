package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MichalMitros/price-tracker/internal/platform"
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/table"
	"golang.org/x/sync/errgroup"

	pgmodels "github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for retailers, runs, products, their price history and categories.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// GetOrCreateRetailer returns retailer stored under url, creating it if needed.
// Existing retailer is never modified.
func (p Postgres) GetOrCreateRetailer(ctx context.Context, name, url string) (*models.Retailer, error) {
	_, err := table.Retailers.INSERT(table.Retailers.Name, table.Retailers.URL).
		MODEL(pgmodels.Retailers{
			Name: name,
			URL:  url,
		}).
		ON_CONFLICT(table.Retailers.URL).
		DO_NOTHING().
		ExecContext(ctx, p.db)
	if err != nil {
		return nil, fmt.Errorf("can't insert retailer: %w", err)
	}

	var retailer pgmodels.Retailers
	err = table.Retailers.SELECT(table.Retailers.AllColumns).
		WHERE(table.Retailers.URL.EQ(pg.String(url))).
		QueryContext(ctx, p.db, &retailer)
	if err != nil {
		return nil, fmt.Errorf("can't get retailer: %w", err)
	}

	return toRetailer(&retailer), nil
}

// StartRun creates new unfinished run of retailer in database and returns it.
// It returns ErrAlreadyRunning if previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context, retailerID int, version int64) (*models.Run, error) {
	var run *models.Run

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		// Retailer row lock serializes concurrent starts.
		var retailer pgmodels.Retailers
		err := table.Retailers.SELECT(table.Retailers.ID).
			WHERE(table.Retailers.ID.EQ(pg.Int32(int32(retailerID)))).
			FOR(pg.UPDATE()).
			QueryContext(ctx, tx, &retailer)
		if errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get retailer %d: %w", retailerID, platform.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("can't lock retailer: %w", err)
		}

		lastRun, err := getLastRun(ctx, tx, retailer.ID)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		var newRun pgmodels.Runs
		err = table.Runs.INSERT(
			table.Runs.ProductsVersion,
			table.Runs.RetailerID,
		).
			MODEL(pgmodels.Runs{
				RetailerID:      retailer.ID,
				ProductsVersion: version,
			}).
			RETURNING(table.Runs.AllColumns).
			QueryContext(ctx, tx, &newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run = ToRun(&newRun)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.Runs.AllColumns.Except(
		table.Runs.ID,
		table.Runs.RetailerID,
		table.Runs.CreatedAt,
		table.Runs.ProductsVersion,
	)

	result, err := table.Runs.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.Runs.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("can't update run %d: %w", run.ID, platform.ErrNotFound)
	}

	return nil
}

// MarkUnseenOutOfStock sets in stock products of retailer with scrape version lower than provided as out of stock.
// Products are never deleted. Returns number of marked products or error.
func (p Postgres) MarkUnseenOutOfStock(ctx context.Context, retailerID int, version int64, batchSize uint) (int32, error) {
	if batchSize == 0 {
		batchSize = 100
	}

	markedProductsNumber := int32(0)
	toMark := make(chan []int32)

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		return getUnseenProductsAsync(egCtx, p.db, int32(retailerID), version, batchSize, toMark)
	})

	errGroup.Go(func() error {
		markedCount, err := markOutOfStockAsync(egCtx, p.db, toMark)
		atomic.AddInt32(&markedProductsNumber, int32(markedCount))
		return err
	})

	if err := errGroup.Wait(); err != nil {
		return markedProductsNumber, fmt.Errorf("can't mark unseen products: %w", err)
	}

	return markedProductsNumber, nil
}

func getLastRun(ctx context.Context, db qrm.DB, retailerID int32) (*pgmodels.Runs, error) {
	var run pgmodels.Runs
	err := table.Runs.SELECT(
		table.Runs.ID,
		table.Runs.CreatedAt,
		table.Runs.FinishedAt,
		table.Runs.Success,
		table.Runs.StatusMessage,
	).
		WHERE(table.Runs.RetailerID.EQ(pg.Int32(retailerID))).
		ORDER_BY(table.Runs.CreatedAt.DESC(), table.Runs.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func getUnseenProductsAsync(
	ctx context.Context,
	db qrm.DB,
	retailerID int32,
	version int64,
	batchSize uint,
	toMark chan []int32,
) error {
	defer close(toMark)
	previousID := int32(0)
	for {
		var products []pgmodels.Products
		err := table.Products.SELECT(table.Products.ID).
			WHERE(pg.AND(
				table.Products.RetailerID.EQ(pg.Int32(retailerID)),
				table.Products.ScrapeVersion.LT(pg.Int64(version)),
				table.Products.InStock.IS_TRUE(),
				table.Products.ID.GT(pg.Int32(previousID)),
			)).
			ORDER_BY(table.Products.ID.ASC()).
			LIMIT(int64(batchSize)).
			QueryContext(ctx, db, &products)
		if errors.Is(err, qrm.ErrNoRows) || (err == nil && len(products) == 0) {
			return nil
		}
		if err != nil {
			return err
		}

		ids := make([]int32, 0, len(products))
		for ix := range products {
			ids = append(ids, products[ix].ID)
		}

		previousID = products[len(products)-1].ID

		select {
		case <-ctx.Done():
			return ctx.Err()
		case toMark <- ids:
		}
	}
}

func markOutOfStockAsync(ctx context.Context, db qrm.DB, toMark chan []int32) (int, error) {
	markedCount := 0
	for batch := range toMark {
		ids := make([]pg.Expression, 0, len(batch))
		for _, id := range batch {
			ids = append(ids, pg.Int32(id))
		}

		result, err := table.Products.UPDATE().
			SET(
				table.Products.InStock.SET(pg.Bool(false)),
			).
			WHERE(table.Products.ID.IN(ids...)).
			ExecContext(ctx, db)
		if err != nil {
			return markedCount, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return markedCount, err
		}
		markedCount += int(affected)
	}
	return markedCount, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
