package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gacha-backend/config"
	"gacha-backend/database"
	"gacha-backend/gacha"
	"gacha-backend/models"
)

type simulateOptions struct {
	count       int
	seed        uint64
	csvPath     string
	weightsPath string
}

func newRootCmd() *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "gacha_simulate",
		Short: "Simulate gacha pulls and compare observed rates",
		Long: `Runs the rarity draw engine with a seeded random source against a catalog
read from a CSV file or from the characters table, then prints the configured
probability of every tier next to the observed frequency.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", 100000, "Number of draws to simulate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "Read the catalog from this CSV instead of the database")
	cmd.Flags().StringVar(&opts.weightsPath, "weights", "", "YAML weight table (defaults to GACHA_WEIGHTS_FILE or the built-in table)")

	return cmd
}

func runSimulate(ctx context.Context, out io.Writer, opts *simulateOptions) error {
	if opts.count < 0 {
		return fmt.Errorf("--count must not be negative")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	weightsPath := opts.weightsPath
	if weightsPath == "" {
		weightsPath = cfg.WeightsFile
	}
	weights, err := config.LoadWeights(weightsPath)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(ctx, cfg, opts.csvPath)
	if err != nil {
		return err
	}

	result, err := gacha.Draw(weights, catalog, opts.count, gacha.NewSeededSource(opts.seed))
	if err != nil {
		return err
	}

	return writeReport(out, weights, catalog, result, opts)
}

func loadCatalog(ctx context.Context, cfg config.Config, csvPath string) ([]models.Character, error) {
	if csvPath != "" {
		file, err := os.Open(csvPath)
		if err != nil {
			return nil, fmt.Errorf("open csv file: %w", err)
		}
		defer file.Close()

		characters, err := gacha.ParseCharactersCSV(file)
		if err != nil {
			return nil, err
		}
		pool := make([]models.Character, 0, len(characters))
		for _, c := range characters {
			if c.Type == cfg.PoolType {
				pool = append(pool, c)
			}
		}
		return pool, nil
	}

	db, err := database.ConnectDB(ctx, cfg.DatabaseURL, database.PoolOptions{PoolSize: 1})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return gacha.NewPostgresRepository(db, cfg.PoolType).FetchDraftablePool(ctx)
}

func writeReport(out io.Writer, weights gacha.WeightTable, catalog []models.Character, result gacha.DrawResult, opts *simulateOptions) error {
	observed := gacha.Tally(result.Results)

	fmt.Fprintf(out, "draws=%d seed=%d catalog=%d results=%d dropped=%d\n\n",
		opts.count, opts.seed, len(catalog), len(result.Results), opts.count-len(result.Results))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "rarity\tcharacters\tconfigured %\tper character %\tobserved\tobserved %\tdiff\t")
	for _, rate := range gacha.Rates(weights, catalog) {
		observedPct := 0.0
		if opts.count > 0 {
			observedPct = float64(observed[rate.Rarity]) / float64(opts.count) * 100
		}
		expectedPct := rate.Probability * 100
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.4f\t%d\t%.2f\t%+.2f\t\n",
			rate.Rarity, rate.Count, expectedPct, rate.PerCharacter*100,
			observed[rate.Rarity], observedPct, observedPct-expectedPct)
	}
	return tw.Flush()
}
