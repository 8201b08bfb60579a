package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"credit-engine/internal/adapter/repository/mysql"
	"credit-engine/internal/config"
	"credit-engine/internal/domain/amortization"
	"credit-engine/internal/domain/eligibility"
	"credit-engine/internal/domain/product"
	"credit-engine/internal/infrastructure/db"
	"credit-engine/internal/infrastructure/logging"
	"credit-engine/internal/seed"
)

const defaultCatalog = "configs/products.yaml"

func openDB() (*gorm.DB, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	return db.OpenGorm(cfg.MySQLDSN(), db.Options{LogLevel: db.GormLogLevel(log.GetLevel()), Log: log})
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gdb, err := openDB()
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			if err := mysql.Migrate(gdb); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the loan product catalog from a YAML file",
		Long: `Load the loan product catalog from a YAML file.

Products whose name matches an active product are skipped, so the
command can be re-run after editing the file.

Examples:
  lendingctl seed
  lendingctl seed --file configs/products.yaml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := seed.Load(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dryRun {
				for _, p := range products {
					fmt.Fprintf(out, "%s\t%s%%\t%s-%s\t%d-%d months\n", p.Name, p.InterestRate,
						p.MinAmount, p.MaxAmount, p.MinTerm, p.MaxTerm)
				}
				fmt.Fprintln(out, "Dry run - no changes made")
				return nil
			}

			gdb, err := openDB()
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			n, err := seed.Apply(cmd.Context(), mysql.NewGormUoW(gdb).Repos().Products, products)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "created %d of %d products\n", n, len(products))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", defaultCatalog, "catalog file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and print the catalog without writing")
	return cmd
}

// previewView is the YAML shape printed by the preview command.
type previewView struct {
	Product        string            `yaml:"product"`
	InterestRate   string            `yaml:"interest_rate"`
	MonthlyPayment string            `yaml:"monthly_payment"`
	TotalPayment   string            `yaml:"total_payment"`
	TotalInterest  string            `yaml:"total_interest"`
	Eligible       bool              `yaml:"eligible"`
	DebtToIncome   string            `yaml:"debt_to_income_ratio,omitempty"`
	Message        string            `yaml:"message"`
	Notes          []string          `yaml:"notes,omitempty"`
	Schedule       []installmentView `yaml:"schedule,omitempty"`
}

type installmentView struct {
	Number    int    `yaml:"n"`
	Payment   string `yaml:"payment"`
	Principal string `yaml:"principal"`
	Interest  string `yaml:"interest"`
	Balance   string `yaml:"balance"`
}

func previewCmd() *cobra.Command {
	var (
		file, name, amount, income string
		term                       int
		withSchedule               bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Price a loan offline against the catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := seed.Load(file)
			if err != nil {
				return err
			}
			p := findProduct(products, name)
			if p == nil {
				return fmt.Errorf("product %q not in %s", name, file)
			}

			req := eligibility.Request{Term: term}
			if req.Amount, err = decimal.NewFromString(amount); err != nil {
				return fmt.Errorf("--amount: %w", err)
			}
			if income != "" {
				v, err := decimal.NewFromString(income)
				if err != nil {
					return fmt.Errorf("--income: %w", err)
				}
				req.MonthlyIncome = &v
			}

			res, err := eligibility.Evaluate(req, p)
			if err != nil {
				return err
			}
			view := toView(p, res, req.MonthlyIncome != nil, withSchedule)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(view); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", defaultCatalog, "catalog file")
	cmd.Flags().StringVarP(&name, "product", "p", "", "product name")
	cmd.Flags().StringVar(&amount, "amount", "", "principal")
	cmd.Flags().IntVar(&term, "term", 0, "term in months")
	cmd.Flags().StringVar(&income, "income", "", "monthly income (optional)")
	cmd.Flags().BoolVar(&withSchedule, "schedule", false, "print every installment")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}

func findProduct(products []*product.Product, name string) *product.Product {
	for _, p := range products {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

func toView(p *product.Product, res eligibility.Result, withIncome, withSchedule bool) previewView {
	money := func(d decimal.Decimal) string { return d.StringFixed(amortization.Places) }
	v := previewView{
		Product:        p.Name,
		InterestRate:   p.InterestRate.String(),
		MonthlyPayment: money(res.Schedule.MonthlyPayment),
		TotalPayment:   money(res.Schedule.TotalPayment),
		TotalInterest:  money(res.Schedule.TotalInterest),
		Eligible:       res.Eligible,
		Message:        res.Message,
		Notes:          res.Notes,
	}
	if withIncome {
		v.DebtToIncome = money(res.DebtToIncomeRatio)
	}
	if withSchedule {
		for _, in := range res.Schedule.Installments {
			v.Schedule = append(v.Schedule, installmentView{
				Number:    in.Number,
				Payment:   money(in.Payment),
				Principal: money(in.Principal),
				Interest:  money(in.Interest),
				Balance:   money(in.RemainingBalance),
			})
		}
	}
	return v
}
