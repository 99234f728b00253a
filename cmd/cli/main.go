package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"statcheck/adapters/excel"
	"statcheck/adapters/stats"
	"statcheck/domain/htest"
	"statcheck/domain/sample"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statcheck-cli",
		Short: "StatCheck CLI for hypothesis tests on sample means (auto Z/T)",
	}

	rootCmd.AddCommand(
		newOneSampleCmd(),
		newTwoSampleCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEngine() *htest.Engine {
	return htest.NewEngine(htest.DistFactory{
		Normal:    stats.Normal,
		StudentsT: stats.StudentsT,
	})
}

func newOneSampleCmd() *cobra.Command {
	var alpha float64
	var alternative string
	var mu0 float64
	var file string
	var column string

	cmd := &cobra.Command{
		Use:   "one [values...]",
		Short: "Test one sample mean against a hypothesized value",
		Long: `Test a single sample mean against μ₀.

Values may be passed as arguments or loaded from an .xlsx/.csv column.

Example: statcheck-cli one --mu0 10 --alpha 0.05 12 15 14 10 9 11`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alt, err := htest.ParseAlternative(alternative)
			if err != nil {
				return err
			}
			values, err := loadSample(args, file, column)
			if err != nil {
				return err
			}

			result, err := newEngine().EvaluateOneSample(htest.OneSampleRequest{
				Config: htest.Config{Alpha: alpha, Alternative: alt},
				Mu0:    mu0,
				Data:   values,
			})
			if err != nil {
				return err
			}

			fmt.Print(htest.BuildReport(result).Render())
			return nil
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", htest.DefaultAlpha, "significance level α")
	cmd.Flags().StringVar(&alternative, "alternative", string(htest.AltTwoSided), "alternative hypothesis: two-sided, greater, less")
	cmd.Flags().Float64Var(&mu0, "mu0", 0, "hypothesized mean μ₀")
	cmd.Flags().StringVar(&file, "file", "", "read sample from an .xlsx/.csv file")
	cmd.Flags().StringVar(&column, "column", "", "column header to read (default: first column)")

	return cmd
}

func newTwoSampleCmd() *cobra.Command {
	var alpha float64
	var alternative string
	var delta0 float64
	var sample1 string
	var sample2 string
	var file string
	var column1 string
	var column2 string

	cmd := &cobra.Command{
		Use:   "two",
		Short: "Test the difference of two independent sample means (Welch)",
		Long: `Test μ₁ − μ₂ against Δ₀ using Welch's approach.

Samples are passed with --sample1/--sample2 as delimited text, or loaded
from two columns of an .xlsx/.csv file.

Example: statcheck-cli two --sample1 "12 15 14 10 9 11" --sample2 "8 7 9 6 10 7"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alt, err := htest.ParseAlternative(alternative)
			if err != nil {
				return err
			}

			var values1, values2 sample.Sample
			if file != "" {
				columns, err := readColumns(file)
				if err != nil {
					return err
				}
				if values1, err = columns.Column(column1); err != nil {
					return err
				}
				if values2, err = columns.Column(column2); err != nil {
					return err
				}
			} else {
				if values1, err = sample.Parse(sample1); err != nil {
					return fmt.Errorf("sample 1: %w", err)
				}
				if values2, err = sample.Parse(sample2); err != nil {
					return fmt.Errorf("sample 2: %w", err)
				}
			}

			result, err := newEngine().EvaluateTwoSample(htest.TwoSampleRequest{
				Config: htest.Config{Alpha: alpha, Alternative: alt},
				Delta0: delta0,
				Data1:  values1,
				Data2:  values2,
			})
			if err != nil {
				return err
			}

			fmt.Print(htest.BuildReport(result).Render())
			return nil
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", htest.DefaultAlpha, "significance level α")
	cmd.Flags().StringVar(&alternative, "alternative", string(htest.AltTwoSided), "alternative hypothesis: two-sided, greater, less")
	cmd.Flags().Float64Var(&delta0, "delta0", 0, "hypothesized difference Δ₀ = μ₁ − μ₂")
	cmd.Flags().StringVar(&sample1, "sample1", "", "first sample as delimited text")
	cmd.Flags().StringVar(&sample2, "sample2", "", "second sample as delimited text")
	cmd.Flags().StringVar(&file, "file", "", "read samples from an .xlsx/.csv file")
	cmd.Flags().StringVar(&column1, "column1", "", "column header for sample 1")
	cmd.Flags().StringVar(&column2, "column2", "", "column header for sample 2")

	return cmd
}

func loadSample(args []string, file, column string) (sample.Sample, error) {
	if file != "" {
		columns, err := readColumns(file)
		if err != nil {
			return nil, err
		}
		if column == "" {
			column = columns.Headers[0]
		}
		return columns.Column(column)
	}
	return sample.Parse(strings.Join(args, " "))
}

func readColumns(file string) (*excel.ColumnData, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()
	return excel.NewDataReader(file).Read(f)
}
