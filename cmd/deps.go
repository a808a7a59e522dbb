package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"tech100/internal/app"
	"tech100/internal/domain"
	"tech100/internal/repository"
	"tech100/internal/service"
	"tech100/internal/util"

	_ "github.com/lib/pq"
)

// Dependencies holds everything the CLI commands need, wired once per
// process.
type Dependencies struct {
	Db     *sql.DB
	Config domain.IndexConfig

	IngestService         service.IngestService
	ReconciliationService service.ReconciliationService
	CompletenessService   service.CompletenessService
	ImputationService     service.ImputationService
	IndexService          service.IndexService
	AlertService          service.AlertService

	PortfolioRepository repository.PortfolioRepository

	Pipeline *app.PipelineHandler
}

func CloseDependencies(deps *Dependencies) {
	err := deps.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	config := domain.IndexConfigFromEnv()

	rawPriceRepository := repository.NewRawPriceRepository(dbConn)
	canonicalPriceRepository := repository.NewCanonicalPriceRepository(dbConn)
	imputationRepository := repository.NewImputationRepository(dbConn)
	tradingDayRepository := repository.NewTradingDayRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	holdingsRepository := repository.NewHoldingsRepository(dbConn)
	divisorRepository := repository.NewDivisorRepository(dbConn)
	indexLevelRepository := repository.NewIndexLevelRepository(dbConn)
	constituentDailyRepository := repository.NewConstituentDailyRepository(dbConn)
	contributionDailyRepository := repository.NewContributionDailyRepository(dbConn)
	statsDailyRepository := repository.NewStatsDailyRepository(dbConn)
	pipelineRunRepository := repository.NewPipelineRunRepository(dbConn)
	alertLogRepository := repository.NewAlertLogRepository(dbConn)

	var emailRepository repository.EmailRepository
	if secrets.SES.Region != "" {
		emailRepository, err = repository.NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email delivery: %w", err)
		}
	}

	alertService := service.NewAlertService(alertLogRepository, emailRepository, secrets.SES.AlertTo)
	ingestService := service.NewIngestService(rawPriceRepository)
	reconciliationService := service.NewReconciliationService(rawPriceRepository, canonicalPriceRepository, config)
	completenessService := service.NewCompletenessService(
		tradingDayRepository, portfolioRepository, canonicalPriceRepository, alertService, config)
	imputationService := service.NewImputationService(
		tradingDayRepository, portfolioRepository, canonicalPriceRepository, imputationRepository, alertService, config)
	indexService := service.NewIndexService(
		dbConn,
		tradingDayRepository,
		portfolioRepository,
		canonicalPriceRepository,
		holdingsRepository,
		divisorRepository,
		indexLevelRepository,
		constituentDailyRepository,
		contributionDailyRepository,
		statsDailyRepository,
		config,
	)

	pipeline := &app.PipelineHandler{
		IngestService:         ingestService,
		ReconciliationService: reconciliationService,
		CompletenessService:   completenessService,
		ImputationService:     imputationService,
		IndexService:          indexService,
		AlertService:          alertService,
		PipelineRunRepository: pipelineRunRepository,
		Config:                config,
	}

	return &Dependencies{
		Db:                    dbConn,
		Config:                config,
		IngestService:         ingestService,
		ReconciliationService: reconciliationService,
		CompletenessService:   completenessService,
		ImputationService:     imputationService,
		IndexService:          indexService,
		AlertService:          alertService,
		PortfolioRepository:   portfolioRepository,
		Pipeline:              pipeline,
	}, nil
}
