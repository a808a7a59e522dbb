package repository

import (
	"database/sql"
	"fmt"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// PortfolioRepository reads the declared index membership feed. The
// declarations are maintained by the (external) index committee tooling;
// this repository only consumes them.
type PortfolioRepository interface {
	ListDeclarations(indexCode string) ([]model.PortfolioDecl, error)
	Add(tx *sql.Tx, decls []model.PortfolioDecl) error
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) ListDeclarations(indexCode string) ([]model.PortfolioDecl, error) {
	query := table.PortfolioDecl.
		SELECT(table.PortfolioDecl.AllColumns).
		WHERE(table.PortfolioDecl.IndexCode.EQ(postgres.String(indexCode))).
		ORDER_BY(table.PortfolioDecl.EffectiveDate.ASC(), table.PortfolioDecl.Ticker.ASC())

	result := []model.PortfolioDecl{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("portfolio_decl.list", fmt.Errorf("failed to list portfolio declarations: %w", err))
	}

	return result, nil
}

func (h portfolioRepositoryHandler) Add(tx *sql.Tx, decls []model.PortfolioDecl) error {
	if len(decls) == 0 {
		return nil
	}

	query := table.PortfolioDecl.
		INSERT(table.PortfolioDecl.AllColumns).
		MODELS(decls).
		ON_CONFLICT(
			table.PortfolioDecl.IndexCode, table.PortfolioDecl.EffectiveDate, table.PortfolioDecl.Ticker,
		).DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("portfolio_decl.add", fmt.Errorf("failed to add portfolio declarations: %w", err))
	}

	return nil
}
