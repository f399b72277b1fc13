package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/retail-stats/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Order interface {
		// GetOrdersInRange returns orders with placed in [from, to).
		GetOrdersInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error)
		// GetOrdersInRangeExcludingCancelled is GetOrdersInRange minus cancelled orders.
		GetOrdersInRangeExcludingCancelled(ctx context.Context, from, to time.Time) ([]entity.Order, error)
		// GetAllOrders returns every order regardless of status.
		GetAllOrders(ctx context.Context) ([]entity.Order, error)
		CountOrders(ctx context.Context) (int, error)
		CountOrdersExcludingCancelled(ctx context.Context) (int, error)
		// CountOnlineOrders counts orders placed without a staff member.
		CountOnlineOrders(ctx context.Context) (int, error)
		CountInStoreOrders(ctx context.Context) (int, error)
	}

	OrderLine interface {
		CountLines(ctx context.Context) (int, error)
		CountLinesExcludingCancelled(ctx context.Context) (int, error)
		// GetLineDetailsExcludingCancelled is the primary joined fetch for
		// line-level reports.
		GetLineDetailsExcludingCancelled(ctx context.Context) ([]entity.OrderLineDetail, error)
		// GetLineDetailsExcludingCancelledBackup walks the joins from the
		// order side and is used when the primary fetch comes back empty.
		GetLineDetailsExcludingCancelledBackup(ctx context.Context) ([]entity.OrderLineDetail, error)
		// GetLineDetailsAllStatuses drops the status filter. Diagnostic use only.
		GetLineDetailsAllStatuses(ctx context.Context) ([]entity.OrderLineDetail, error)
		// GetLineDetailsInRange bounds the primary fetch by order placed date.
		GetLineDetailsInRange(ctx context.Context, from, to time.Time) ([]entity.OrderLineDetail, error)
	}

	Products interface {
		// GetAllProducts returns every product row. The low-stock report
		// filters on the active flag and stock in memory.
		GetAllProducts(ctx context.Context) ([]entity.Product, error)
	}

	Repository interface {
		Order() Order
		OrderLine() OrderLine
		Products() Products
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Statistics is the report surface consumed by the HTTP layer and the
	// stock alert worker. Every method soft-fails to a default shape.
	Statistics interface {
		BestSellers(ctx context.Context, limit int) []entity.BestSellingProduct
		PeriodStatistics(ctx context.Context, period string) entity.PeriodStatistics
		TotalStatistics(ctx context.Context) entity.PeriodStatistics
		WeeklyRevenue(ctx context.Context) []entity.WeeklyRevenue
		OrderStatusDistribution(ctx context.Context, period string) []entity.OrderStatusStatistics
		ChannelStatistics(ctx context.Context) []entity.ChannelStatistics
		LowStockProducts(ctx context.Context, threshold, limit int) []entity.LowStockProduct
		TopManufacturers(ctx context.Context, limit int) []entity.ManufacturerStatistics
		Dashboard(ctx context.Context, period string) entity.Dashboard
	}

	Mailer interface {
		SendLowStockAlert(ctx context.Context, products []entity.LowStockProduct) error
	}
)
