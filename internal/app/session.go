package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"datacli/internal/chart"
	"datacli/internal/cleaning"
	"datacli/internal/config"
	"datacli/internal/dataset"
	"datacli/internal/describe"
	"datacli/internal/errors"
	"datacli/internal/exporter"
	"datacli/internal/infrastructure"
	"datacli/internal/prompt"
	"datacli/internal/validation"
)

// Session drives one interactive analyzer run: load a dataset, clean it,
// apply optional operations, report statistics and render charts.
type Session struct {
	cfg       *config.Config
	paths     *config.Paths
	console   *prompt.Console
	logger    *slog.Logger
	validator *validation.FileValidator
	csv       *exporter.CSVWriter
	excel     *exporter.ExcelWriter
	charts    *chart.Renderer

	fileName string
	ds       *dataset.Dataset
}

// NewSession wires a session over the given console streams
func NewSession(cfg *config.Config, paths *config.Paths, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		cfg:       cfg,
		paths:     paths,
		console:   prompt.New(in, out),
		logger:    logger,
		validator: validation.NewFileValidator(logger),
		csv:       exporter.NewCSVWriter(logger),
		excel:     exporter.NewExcelWriter(logger),
		charts:    chart.NewRenderer(paths.ChartsDir, cfg.Analyze.HistogramBins, logger),
	}
}

// Run executes the full interactive flow. It returns nil when the user walks
// through the whole session or ends input early.
func (s *Session) Run(ctx context.Context) error {
	logger := infrastructure.LoggerWithContext(ctx)

	s.console.Banner("Welcome to Data Analyzer!")
	s.console.Warnf("Note: place your dataset in %s before proceeding.", s.paths.DatasetDir)

	if err := s.loadDataset(ctx); err != nil {
		return err
	}

	s.console.Banner("Data Preprocessing")
	s.preprocess(logger)

	if err := s.optionalOperations(ctx); err != nil && err != io.EOF {
		return err
	}

	s.console.Banner("Statistical Summaries")
	s.reportStatistics()

	s.console.Banner("Visualization")
	s.preview()
	if err := s.visualize(); err != nil && err != io.EOF {
		return err
	}

	logger.InfoContext(ctx, "session finished",
		slog.String("dataset", s.fileName),
		slog.Int("rows", s.ds.Len()))
	return nil
}

// loadDataset prompts for a file name until a dataset loads successfully
func (s *Session) loadDataset(ctx context.Context) error {
	logger := infrastructure.LoggerWithContext(ctx)

	if names, err := s.validator.ListDatasets(s.paths.DatasetDir); err == nil && len(names) > 0 {
		s.console.Infof("Available datasets: %s", strings.Join(names, ", "))
	}

	for {
		name, err := s.console.Ask("Enter your dataset's file name (incl. '.csv' or '.xlsx'):")
		if err != nil {
			return err
		}

		path := s.paths.DatasetPath(name)
		if err := s.validator.ValidateDatasetFile(path); err != nil {
			s.reportError(err)
			continue
		}

		var ds *dataset.Dataset
		switch strings.ToLower(filepath.Ext(name)) {
		case ".csv":
			ds, err = dataset.LoadCSV(path)
		case ".xlsx":
			sheet, askErr := s.console.Ask("Specify sheet name (empty for first sheet):")
			if askErr != nil {
				return askErr
			}
			ds, err = dataset.LoadExcel(path, sheet)
		}
		if err != nil {
			logger.WarnContext(ctx, "dataset load failed",
				slog.String("file", name),
				slog.String("error", err.Error()))
			s.reportError(err)
			continue
		}

		s.fileName = name
		s.ds = ds
		s.console.Successf("Dataset was successfully loaded.")
		s.console.Infof("Number of rows in the dataset: %d", ds.Len())
		logger.InfoContext(ctx, "dataset loaded",
			slog.String("file", name),
			slog.Int("rows", ds.Len()))
		return nil
	}
}

// preprocess runs the fixed cleaning steps: missing rows, outliers,
// duplicates, string normalization
func (s *Session) preprocess(logger *slog.Logger) {
	before := s.ds.Len()

	if n := s.ds.DropMissing(); n > 0 {
		s.console.Warnf("Rows with missing values have been removed: %d", n)
	} else {
		s.console.Infof("No rows with missing values found.")
	}

	removed := cleaning.RemoveOutliers(s.ds, s.cfg.Analyze.IQRMultiplier, logger)
	s.console.Warnf("Outliers have been removed: %d rows", removed)

	if n := s.ds.DropDuplicates(); n > 0 {
		s.console.Warnf("Duplicate rows have been removed: %d", n)
	}

	cleaning.NormalizeStrings(s.ds)
	s.console.Infof("Strings have been lowercased, trimmed and stripped of special characters.")

	s.console.Successf("Updated number of rows in the dataset: %d", s.ds.Len())
	s.console.Warnf("Number of rows removed: %d", before-s.ds.Len())
}

// optionalOperations runs the user-selected transform loop and exports the
// cleaned dataset when the user finishes
func (s *Session) optionalOperations(ctx context.Context) error {
	s.console.Infof("Optional operations on the dataset:")

	for {
		choice, err := s.console.AskInt("Enter 0: finish cleaning\nEnter 1: convert negative values to 0\nEnter 2: remove a column\nChoice:")
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return s.exportCleaned(ctx)
		case 1:
			changed := cleaning.ClampNegatives(s.ds)
			s.console.Successf("Negative values converted to 0: %d cells", changed)
		case 2:
			s.console.Infof("Columns in your dataset: %s", strings.Join(s.ds.Columns(), ", "))
			name, err := s.console.Ask("Which column would you like to remove?")
			if err != nil {
				return err
			}
			if err := cleaning.DropColumn(s.ds, name); err != nil {
				s.reportError(err)
				continue
			}
			s.console.Successf("Column %q removed.", name)
		default:
			s.console.Errorf("Invalid choice, try again.")
		}
	}
}

// exportCleaned asks for an output format and writes the cleaned dataset
func (s *Session) exportCleaned(ctx context.Context) error {
	logger := infrastructure.LoggerWithContext(ctx)

	for {
		format, err := s.console.Ask("Would you like your dataset in csv or excel format? (csv/excel):")
		if err != nil {
			return err
		}

		var path string
		switch strings.ToLower(format) {
		case "csv":
			path = s.paths.CleanedPath(s.fileName, ".csv")
			err = s.csv.WriteDataset(path, s.ds)
		case "excel":
			path = s.paths.CleanedPath(s.fileName, ".xlsx")
			err = s.excel.WriteDataset(path, s.ds)
		default:
			s.console.Errorf("Invalid choice, try again.")
			continue
		}

		if err != nil {
			logger.ErrorContext(ctx, "export failed",
				slog.String("path", path),
				slog.String("error", err.Error()))
			s.reportError(err)
			return err
		}

		s.console.Successf("Cleaned dataset saved to %s", path)
		return nil
	}
}

// reportStatistics prints the describe() table and writes the summary CSV
func (s *Session) reportStatistics() {
	summaries := describe.Summarize(s.ds)
	if len(summaries) == 0 {
		s.console.Warnf("No numeric columns to summarize.")
		return
	}

	s.console.Infof("Statistical summaries of numeric columns:")
	headers := []string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}
	rows := make([][]string, len(summaries))
	for i, sum := range summaries {
		rows[i] = []string{
			sum.Column,
			dataset.FormatFloat(float64(sum.Count)),
			dataset.FormatFloat(sum.Mean),
			dataset.FormatFloat(sum.Std),
			dataset.FormatFloat(sum.Min),
			dataset.FormatFloat(sum.Q1),
			dataset.FormatFloat(sum.Median),
			dataset.FormatFloat(sum.Q3),
			dataset.FormatFloat(sum.Max),
		}
	}
	s.console.Table(headers, rows)

	path := s.paths.CleanedPath(s.fileName, "_summary.csv")
	if err := s.csv.WriteSummary(path, summaries); err != nil {
		s.reportError(err)
		return
	}
	s.console.Infof("Summary written to %s", path)
}

// preview shows the head of the dataset and the remaining columns
func (s *Session) preview() {
	s.console.Infof("Preview of dataset:")
	s.console.Table(s.ds.Columns(), s.ds.Head(s.cfg.Analyze.PreviewRows))
	s.console.Infof("List of columns: %s", strings.Join(s.ds.Columns(), ", "))
}

// visualize renders charts until the user enters an empty plot type
func (s *Session) visualize() error {
	for {
		plotType, err := s.console.Ask("What kind of visual would you like? ('scatter', 'histogram', 'boxplot', empty to finish):")
		if err != nil {
			return err
		}

		var path string
		switch strings.ToLower(plotType) {
		case "":
			return nil
		case "scatter":
			xCol, err := s.console.Ask("Which column for x?")
			if err != nil {
				return err
			}
			yCol, err := s.console.Ask("Which column for y?")
			if err != nil {
				return err
			}
			path, err = s.charts.Scatter(s.ds, xCol, yCol)
			if err != nil {
				s.reportError(err)
				continue
			}
		case "histogram":
			col, err := s.console.Ask("Which column?")
			if err != nil {
				return err
			}
			path, err = s.charts.Histogram(s.ds, col)
			if err != nil {
				s.reportError(err)
				continue
			}
		case "boxplot":
			col, err := s.console.Ask("Which column?")
			if err != nil {
				return err
			}
			path, err = s.charts.BoxPlot(s.ds, col)
			if err != nil {
				s.reportError(err)
				continue
			}
		default:
			s.console.Errorf("Invalid plot type! Supported plots are 'scatter', 'histogram', 'boxplot'.")
			continue
		}

		s.console.Successf("Chart saved to %s", path)
	}
}

// reportError prints an application error in user terms
func (s *Session) reportError(err error) {
	if errors.IsNotFound(err) || errors.IsTypeMismatch(err) {
		s.console.Errorf("%s", err.Error())
	} else {
		s.console.Errorf("Error: %s", err.Error())
	}
	s.logger.Warn("operation failed", slog.String("error", err.Error()))
}
