package app

import (
	"fmt"

	creditcardHTTP "github.com/allisson/creditcards/internal/creditcard/http"
	creditcardRepository "github.com/allisson/creditcards/internal/creditcard/repository"
	creditcardUseCase "github.com/allisson/creditcards/internal/creditcard/usecase"
)

// CreditCardRepository returns the encryption-aware credit card repository for the configured driver.
func (c *Container) CreditCardRepository() (creditcardUseCase.CreditCardRepository, error) {
	err := c.resolve("creditCardRepository", &c.creditCardRepositoryInit, func() error {
		return c.initCreditCardRepositories()
	})
	if err != nil {
		return nil, err
	}
	return c.creditCardRepository, nil
}

// ReportRepository returns the report queries. They share the credit card repository instance.
func (c *Container) ReportRepository() (creditcardUseCase.ReportRepository, error) {
	err := c.resolve("reportRepository", &c.reportRepositoryInit, func() error {
		if _, err := c.CreditCardRepository(); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.reportRepository, nil
}

// CreditCardUseCase returns the credit card use case.
func (c *Container) CreditCardUseCase() (creditcardUseCase.CreditCardUseCase, error) {
	err := c.resolve("creditCardUseCase", &c.creditCardUseCaseInit, func() (err error) {
		c.creditCardUseCase, err = c.initCreditCardUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.creditCardUseCase, nil
}

// ReportUseCase returns the report use case.
func (c *Container) ReportUseCase() (creditcardUseCase.ReportUseCase, error) {
	err := c.resolve("reportUseCase", &c.reportUseCaseInit, func() (err error) {
		c.reportUseCase, err = c.initReportUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.reportUseCase, nil
}

// CreditCardHandler returns the credit card HTTP handler.
func (c *Container) CreditCardHandler() (*creditcardHTTP.CreditCardHandler, error) {
	err := c.resolve("creditCardHandler", &c.creditCardHandlerInit, func() error {
		useCase, err := c.CreditCardUseCase()
		if err != nil {
			return fmt.Errorf("failed to get credit card use case for handler: %w", err)
		}
		c.creditCardHandler = creditcardHTTP.NewCreditCardHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.creditCardHandler, nil
}

// ReportHandler returns the report HTTP handler.
func (c *Container) ReportHandler() (*creditcardHTTP.ReportHandler, error) {
	err := c.resolve("reportHandler", &c.reportHandlerInit, func() error {
		useCase, err := c.ReportUseCase()
		if err != nil {
			return fmt.Errorf("failed to get report use case for handler: %w", err)
		}
		c.reportHandler = creditcardHTTP.NewReportHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.reportHandler, nil
}

func (c *Container) initCreditCardRepositories() error {
	db, err := c.DB()
	if err != nil {
		return fmt.Errorf("failed to get database for credit card repository: %w", err)
	}

	encryptor, err := c.FieldEncryptor()
	if err != nil {
		return fmt.Errorf("failed to get field encryptor for credit card repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		repo := creditcardRepository.NewMySQLCreditCardRepository(db, encryptor)
		c.creditCardRepository, c.reportRepository = repo, repo
	case "postgres":
		repo := creditcardRepository.NewPostgreSQLCreditCardRepository(db, encryptor)
		c.creditCardRepository, c.reportRepository = repo, repo
	default:
		return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
	return nil
}

func (c *Container) initCreditCardUseCase() (creditcardUseCase.CreditCardUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for credit card use case: %w", err)
	}

	cardRepo, err := c.CreditCardRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get credit card repository for credit card use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for credit card use case: %w", err)
	}

	encryptor, err := c.FieldEncryptor()
	if err != nil {
		return nil, fmt.Errorf("failed to get field encryptor for credit card use case: %w", err)
	}

	baseUseCase := creditcardUseCase.NewCreditCardUseCase(txManager, cardRepo, outboxRepo, encryptor)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for credit card use case: %w", err)
		}
		return creditcardUseCase.NewCreditCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initReportUseCase() (creditcardUseCase.ReportUseCase, error) {
	reportRepo, err := c.ReportRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get report repository for report use case: %w", err)
	}

	baseUseCase := creditcardUseCase.NewReportUseCase(reportRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for report use case: %w", err)
		}
		return creditcardUseCase.NewReportUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
