package main

import (
	"context"
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/app"
	"delivery-route-optimizer/internal/config"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/ports"
	"delivery-route-optimizer/internal/services"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	seedFile   string
	algorithm  string
	multiStart int
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "routectl",
	Short: "Plan the shortest closed delivery route over the outlet list",
	Long: `routectl computes a minimum-distance route that leaves the depot, visits every
outlet once and returns. Locations come from a seed file (--file) or from the
configured database.`,
	SilenceUsage: true,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the route and print the leg table",
	RunE:  runSolve,
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the pairwise distance matrix in meters",
	RunE:  runMatrix,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&seedFile, "file", "f", "", "Location seed file (JSON); defaults to the configured database")

	solveCmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(domain.AlgorithmAuto), "Solver regime: auto, exact or heuristic")
	solveCmd.Flags().IntVarP(&multiStart, "multi-start", "m", 0, "Heuristic starts to evaluate (0 uses MULTI_START)")
	solveCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the plan as JSON")

	rootCmd.AddCommand(solveCmd, matrixCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env bundles what both subcommands need; closeFn releases it.
type env struct {
	cfg     config.Config
	repo    ports.LocationRepository
	planner *services.RoutePlanner
	closeFn func()
}

func setup(ctx context.Context) (*env, error) {
	config.LoadDotEnv()
	cfg := config.Load()

	e := &env{cfg: cfg, closeFn: func() {}}
	e.planner = &services.RoutePlanner{Options: app.SolverOptions(cfg)}

	if seedFile != "" {
		repo, err := repositories.NewStaticLocationRepositoryFromFile(seedFile)
		if err != nil {
			return nil, err
		}
		e.repo = repo
		return e, nil
	}

	conn, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	distanceCache, closeCache, err := app.NewDistanceCache(cfg, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	e.repo = repositories.NewSQLLocationRepository(conn)
	e.planner.Cache = distanceCache
	e.closeFn = func() {
		closeCache()
		conn.Close()
	}
	return e, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.closeFn()

	e.planner.Options.Algorithm = domain.Algorithm(algorithm)
	if multiStart > 0 {
		e.planner.Options.MultiStart = multiStart
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.SolveTimeout)
	defer cancel()

	plan, err := e.planner.PlanStored(ctx, e.repo)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writePlanJSON(out, plan)
	}
	return writePlanTable(out, plan)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.closeFn()

	locs, err := e.repo.ListLocations(cmd.Context())
	if err != nil {
		return fmt.Errorf("matrix: %w", err)
	}

	m, err := services.BuildDistanceMatrixCached(cmd.Context(), locs, e.planner.Cache)
	if err != nil {
		return fmt.Errorf("matrix: %w", err)
	}

	return writeMatrix(cmd.OutOrStdout(), domain.Names(locs), m)
}
