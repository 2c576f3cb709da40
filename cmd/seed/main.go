// Package main provides a CLI tool for seeding the database with demo expenses and incomes.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"grainpay/internal/config"
	"grainpay/internal/core/types"
	"grainpay/internal/domain"
	"grainpay/internal/domain/expense"
	"grainpay/internal/domain/income"
	"grainpay/internal/infrastructure/storage"
	"grainpay/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}
}

func run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	log.Info("connected to database")

	if cfg.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}

	if err := seedExpenses(ctx, expense.NewService(store.Expenses, store.TxManager, nil), log); err != nil {
		return err
	}
	return seedIncomes(ctx, income.NewService(store.Incomes, store.TxManager, nil), log)
}

// seedExpenses inserts the demo expenses unless the table already has rows.
func seedExpenses(ctx context.Context, svc expense.Service, log *logger.Logger) error {
	existing, err := svc.FindAll(ctx, domain.PageRequest{Page: 0, Size: 1, Sort: domain.DefaultSort})
	if err != nil {
		return err
	}
	if existing.TotalElements > 0 {
		log.Infow("expenses already present, skipping", "count", existing.TotalElements)
		return nil
	}

	type expenseSeed struct {
		description string
		amount      string
		day         int
		payment     expense.PaymentType
	}

	seeds := []expenseSeed{
		{"Cellphone", "1000.00", 1, expense.PaymentMoney},
		{"Supermarket", "356.90", 3, expense.PaymentCreditCard},
		{"Lunch", "42.50", 4, expense.PaymentVoucher},
		{"Internet", "99.99", 10, expense.PaymentCreditCard},
	}

	for _, s := range seeds {
		amount := types.MustAmount(s.amount)
		date := types.NewDateTime(time.Date(2023, time.April, s.day, 0, 0, 0, 0, time.UTC))
		pt := s.payment
		if _, err := svc.Save(ctx, expense.DTO{
			Description: s.description,
			Amount:      &amount,
			Date:        &date,
			PaymentType: &pt,
		}); err != nil {
			return fmt.Errorf("seed expense %q: %w", s.description, err)
		}
	}
	log.Infow("expenses seeded", "count", len(seeds))
	return nil
}

// seedIncomes inserts the demo incomes unless the table already has rows.
func seedIncomes(ctx context.Context, svc income.Service, log *logger.Logger) error {
	existing, err := svc.FindAll(ctx, domain.PageRequest{Page: 0, Size: 1, Sort: domain.DefaultSort})
	if err != nil {
		return err
	}
	if existing.TotalElements > 0 {
		log.Infow("incomes already present, skipping", "count", existing.TotalElements)
		return nil
	}

	seeds := []struct {
		description string
		amount      string
		day         int
	}{
		{"Salary", "3500.00", 5},
		{"Freelance", "820.00", 15},
	}

	for _, s := range seeds {
		amount := types.MustAmount(s.amount)
		date := types.NewDate(time.Date(2023, time.April, s.day, 0, 0, 0, 0, time.UTC))
		if _, err := svc.Save(ctx, income.DTO{
			Description: s.description,
			Amount:      &amount,
			Date:        &date,
		}); err != nil {
			return fmt.Errorf("seed income %q: %w", s.description, err)
		}
	}
	log.Infow("incomes seeded", "count", len(seeds))
	return nil
}
