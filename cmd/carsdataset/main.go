package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MMaikov/CarsDataset/pkg/analyze"
	"github.com/MMaikov/CarsDataset/pkg/dataprep"
	"github.com/MMaikov/CarsDataset/pkg/dataset"
	"github.com/MMaikov/CarsDataset/pkg/loader"
	"github.com/MMaikov/CarsDataset/pkg/model"
	"github.com/MMaikov/CarsDataset/pkg/pipeline"
	"github.com/MMaikov/CarsDataset/pkg/report"
	"github.com/MMaikov/CarsDataset/pkg/stats"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "carsdataset",
		Short:         "Clean and analyze car technical-specification datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCleanCmd(&verbose))
	root.AddCommand(newAnalyzeCmd(&verbose))
	root.AddCommand(newRunCmd(&verbose))
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func newCleanCmd(verbose *bool) *cobra.Command {
	var in, out, policyPath string
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean a raw scraped CSV and write the cleaned dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runClean(log, in, out, policyPath)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "raw CSV file")
	cmd.Flags().StringVar(&out, "out", "cleaned.csv", "cleaned CSV file to write")
	cmd.Flags().StringVar(&policyPath, "policy", "", "YAML cleaning policy (defaults used when empty)")
	cmd.MarkFlagRequired("in")
	return cmd
}

func newAnalyzeCmd(verbose *bool) *cobra.Command {
	opts := defaultAnalyzeOptions()
	var in, outDir string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute grouped summaries, correlations, and model fits over a cleaned CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runAnalyze(log, in, outDir, opts)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "cleaned CSV file")
	cmd.Flags().StringVar(&outDir, "out-dir", "analysis", "directory for summary tables and plots")
	bindAnalyzeFlags(cmd, &opts)
	cmd.MarkFlagRequired("in")
	return cmd
}

func newRunCmd(verbose *bool) *cobra.Command {
	opts := defaultAnalyzeOptions()
	var in, outDir, policyPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Clean a raw CSV, then analyze the cleaned output",
		Long: "Runs the two stages in order: cleaning writes <out-dir>/cleaned.csv," +
			" then analysis reads that file back and writes its artifacts next to it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			cleaned := filepath.Join(outDir, "cleaned.csv")
			if err := runClean(log, in, cleaned, policyPath); err != nil {
				return err
			}
			return runAnalyze(log, cleaned, outDir, opts)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "raw CSV file")
	cmd.Flags().StringVar(&outDir, "out-dir", "analysis", "directory for all outputs")
	cmd.Flags().StringVar(&policyPath, "policy", "", "YAML cleaning policy (defaults used when empty)")
	bindAnalyzeFlags(cmd, &opts)
	cmd.MarkFlagRequired("in")
	return cmd
}

type analyzeOptions struct {
	groupBy     string
	target      string
	clusterK    int
	polyDegree  int
	testRatio   float64
	encodeGroup bool
	plots       bool
}

func defaultAnalyzeOptions() analyzeOptions {
	return analyzeOptions{
		groupBy:    "make",
		target:     "horsepower",
		clusterK:   3,
		polyDegree: 1,
		testRatio:  0.2,
		plots:      true,
	}
}

func bindAnalyzeFlags(cmd *cobra.Command, opts *analyzeOptions) {
	cmd.Flags().StringVar(&opts.groupBy, "group-by", opts.groupBy, "categorical column to group summaries by")
	cmd.Flags().StringVar(&opts.target, "target", opts.target, "numeric column the regression predicts")
	cmd.Flags().IntVar(&opts.clusterK, "cluster-k", opts.clusterK, "number of k-means clusters (0 disables clustering)")
	cmd.Flags().IntVar(&opts.polyDegree, "poly", opts.polyDegree, "polynomial feature degree for the regression (1 = off)")
	cmd.Flags().Float64Var(&opts.testRatio, "test-ratio", opts.testRatio, "fraction of rows held out for regression metrics")
	cmd.Flags().BoolVar(&opts.encodeGroup, "encode-group", opts.encodeGroup, "one-hot encode the group-by column into clustering features")
	cmd.Flags().BoolVar(&opts.plots, "plots", opts.plots, "write PNG plots next to the summary tables")
}

func runClean(log *zap.Logger, in, out, policyPath string) error {
	policy := dataprep.DefaultPolicy()
	if policyPath != "" {
		var err error
		policy, err = dataprep.LoadPolicy(policyPath)
		if err != nil {
			return err
		}
	}

	raw, err := dataset.ReadCSV(in)
	if err != nil {
		return err
	}
	log.Info("loaded raw dataset",
		zap.String("path", in),
		zap.Int("rows", raw.Len()),
		zap.Int("columns", len(raw.Columns)))

	cleaner := dataprep.NewCleaner(dataset.CarSchema(), policy, log)
	cleaned, err := cleaner.Clean(raw)
	if err != nil {
		return err
	}
	if err := dataset.WriteCSV(cleaned, out); err != nil {
		return err
	}
	log.Info("wrote cleaned dataset", zap.String("path", out), zap.Int("rows", cleaned.Len()))
	return nil
}

func runAnalyze(log *zap.Logger, in, outDir string, opts analyzeOptions) error {
	ds, err := dataset.ReadCSV(in)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	// Sparse-column dropping may have removed declared numeric columns
	// and cleaning may have coerced extra ones, so detect the analyzable
	// set from the data instead of the static schema.
	numeric := dataset.InferNumericColumns(ds, 200)
	log.Info("analyzing cleaned dataset",
		zap.String("path", in),
		zap.Int("rows", ds.Len()),
		zap.Strings("numeric_columns", numeric))

	if err := summarize(log, ds, outDir, opts.groupBy, numeric); err != nil {
		return err
	}
	if err := correlate(log, ds, outDir, numeric); err != nil {
		return err
	}
	if opts.plots {
		if err := histograms(ds, outDir, numeric); err != nil {
			return err
		}
	}
	if err := regress(log, ds, outDir, numeric, opts); err != nil {
		return err
	}
	if opts.clusterK > 0 {
		if err := cluster(log, ds, outDir, numeric, opts); err != nil {
			return err
		}
	}
	return nil
}

func summarize(log *zap.Logger, ds *dataset.Dataset, outDir, groupBy string, numeric []string) error {
	rep, err := analyze.Summarize(ds, groupBy, numeric)
	if err != nil {
		return err
	}
	for _, finding := range rep.Insufficient {
		log.Warn("aggregation skipped", zap.String("reason", finding.Error()))
	}
	path := filepath.Join(outDir, "summary_by_"+groupBy+".csv")
	if err := report.WriteSummaryCSV(rep, path); err != nil {
		return err
	}
	log.Info("wrote group summaries", zap.String("path", path), zap.Int("groups", len(rep.Groups)))
	return nil
}

func correlate(log *zap.Logger, ds *dataset.Dataset, outDir string, numeric []string) error {
	m, err := analyze.CorrelationMatrix(ds, numeric)
	if err != nil {
		var insufficient *analyze.InsufficientDataError
		if errors.As(err, &insufficient) {
			log.Warn("correlation skipped", zap.String("reason", insufficient.Error()))
			return nil
		}
		return err
	}
	path := filepath.Join(outDir, "correlation.csv")
	if err := report.WriteCorrelationCSV(numeric, m, path); err != nil {
		return err
	}
	log.Info("wrote correlation matrix", zap.String("path", path))
	return nil
}

func histograms(ds *dataset.Dataset, outDir string, numeric []string) error {
	for _, col := range numeric {
		vals, err := ds.NumericColumn(col)
		if err != nil {
			return err
		}
		if err := report.Histogram(vals, col, filepath.Join(outDir, "hist_"+col+".png")); err != nil {
			return err
		}
	}
	return nil
}

func regress(log *zap.Logger, ds *dataset.Dataset, outDir string, numeric []string, opts analyzeOptions) error {
	var features []string
	for _, c := range numeric {
		if c != opts.target {
			features = append(features, c)
		}
	}
	if len(features) == 0 || ds.ColumnIndex(opts.target) < 0 {
		log.Warn("regression skipped", zap.String("reason", "no usable features or target"))
		return nil
	}
	const minRows = 10
	if ds.Len() < minRows {
		log.Warn("regression skipped",
			zap.String("reason", (&analyze.InsufficientDataError{
				Group: "all", Metric: "regression", Count: ds.Len(), Needed: minRows,
			}).Error()))
		return nil
	}

	X, err := ds.Matrix(features)
	if err != nil {
		return err
	}
	y, err := ds.NumericColumn(opts.target)
	if err != nil {
		return err
	}
	if opts.polyDegree > 1 {
		X, features = dataprep.PolynomialFeatures(X, features, opts.polyDegree)
	}

	XTrain, XTest, yTrain, yTest := loader.TrainTestSplit(X, y, opts.testRatio)

	prep := pipeline.New(stats.NewStandardScaler())
	XTrainScaled, err := prep.FitTransform(XTrain)
	if err != nil {
		return err
	}
	XTestScaled := prep.Transform(XTest)

	reg := model.NewLinearRegression(len(features), 0.01, 200, 32)
	if err := reg.Fit(XTrainScaled, yTrain); err != nil {
		return err
	}
	pred := reg.Predict(XTestScaled)
	log.Info("regression fit",
		zap.String("target", opts.target),
		zap.Strings("features", features),
		zap.Float64("r2", model.R2(yTest, pred)),
		zap.Float64("rmse", model.RMSE(yTest, pred)))

	if opts.plots && len(XTestScaled) > 0 {
		x0 := make([]float64, len(XTestScaled))
		for i, row := range XTestScaled {
			x0[i] = row[0]
		}
		path := filepath.Join(outDir, "regression_"+opts.target+".png")
		if err := report.RegressionScatter(x0, yTest, reg.W[0], reg.Bias(), features[0]+" (scaled)", opts.target, path); err != nil {
			return err
		}
	}
	return nil
}

func cluster(log *zap.Logger, ds *dataset.Dataset, outDir string, numeric []string, opts analyzeOptions) error {
	if ds.Len() < opts.clusterK {
		log.Warn("clustering skipped",
			zap.String("reason", (&analyze.InsufficientDataError{
				Group: "all", Metric: "kmeans", Count: ds.Len(), Needed: opts.clusterK,
			}).Error()))
		return nil
	}
	X, err := ds.Matrix(numeric)
	if err != nil {
		return err
	}
	scaler := stats.NewStandardScaler()
	X = scaler.FitTransform(X)

	if opts.encodeGroup {
		groupCol, err := ds.Column(opts.groupBy)
		if err != nil {
			return err
		}
		X = dataprep.AppendOneHot(X, groupCol)
	}

	km := model.NewKMeans(opts.clusterK, 100)
	if err := km.Fit(X); err != nil {
		return err
	}
	assignments, err := km.Predict(X)
	if err != nil {
		return err
	}
	log.Info("k-means fit",
		zap.Int("k", opts.clusterK),
		zap.Float64("inertia", km.Inertia))

	if opts.plots && len(numeric) >= 2 {
		path := filepath.Join(outDir, "clusters.png")
		if err := report.ClusterScatter(X, assignments, km.Centroids,
			numeric[0]+" (scaled)", numeric[1]+" (scaled)", path); err != nil {
			return err
		}
	}
	return nil
}
