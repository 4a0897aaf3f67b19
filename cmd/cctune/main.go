package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cctune/internal/bootstrap"
	profiledto "cctune/internal/modules/profile/dto"
	"cctune/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var workDir string

	root := &cobra.Command{
		Use:           "cctune",
		Short:         "Color Calibration Tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare invocation runs the interactive calibrator.
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(workDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
	root.PersistentFlags().StringVar(&workDir, "dir", ".", "settings tree root")

	root.AddCommand(newTUICmd(&workDir))
	root.AddCommand(newCalibrationCmd(&workDir))
	root.AddCommand(newProfileCmd(&workDir))
	root.AddCommand(newReindexCmd(&workDir))
	return root
}

func loadApp(workDir string) (*bootstrap.App, error) {
	cfg, err := config.New(workDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(workDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run cctune terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newCalibrationCmd(workDir *string) *cobra.Command {
	calibration := &cobra.Command{Use: "calibration", Short: "Monitor calibration commands"}

	calibration.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the saved calibration levels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			set, err := app.CalibrationCLI.Show(context.Background())
			if err != nil {
				return err
			}
			for _, r := range set.Records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-10s\tbase=%.0f\twb=%+.1f\ttint=%+.1f\n", r.Level, r.Base, r.WhiteBalance, r.Tint)
			}
			return nil
		},
	})

	calibration.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Discard the saved calibration so the wizard runs again",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			if err := app.CalibrationCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "calibration cleared")
			return nil
		},
	})

	return calibration
}

func newProfileCmd(workDir *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Phone profile commands"}

	profile.AddCommand(&cobra.Command{
		Use:   "files",
		Short: "List profile settings files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			files, err := app.ProfileCLI.ListFiles(context.Background())
			if err != nil {
				return err
			}
			if len(files) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no settings files")
				return nil
			}
			for _, f := range files {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	})

	var showFile string
	show := &cobra.Command{
		Use:   "show --file <path>",
		Short: "Show the profiles in a settings file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showFile) == "" {
				return fmt.Errorf("--file is required")
			}
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.ShowFile(context.Background(), showFile)
			if err != nil {
				return err
			}
			for _, p := range out.Profiles {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s K\twb=%+.1f\ttint=%+.1f\n", p.Name, p.Temperature, p.WhiteBalance, p.Tint)
			}
			return nil
		},
	}
	show.Flags().StringVar(&showFile, "file", "", "settings file path")
	profile.AddCommand(show)

	var setFile, setName, setTemp string
	var setWB, setTint float64
	set := &cobra.Command{
		Use:   "set --file <path> --name <profile>",
		Short: "Update one profile's corrections in place",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(setFile) == "" || strings.TrimSpace(setName) == "" {
				return fmt.Errorf("--file and --name are required")
			}
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.Set(context.Background(), setFile, setName, setTemp, setWB, setTint)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s: %s K wb=%+.1f tint=%+.1f\n", out.Name, out.Temperature, out.WhiteBalance, out.Tint)
			return nil
		},
	}
	set.Flags().StringVar(&setFile, "file", "", "settings file path")
	set.Flags().StringVar(&setName, "name", "", "profile name")
	set.Flags().StringVar(&setTemp, "temp", "NA", "color temperature in Kelvin, or NA")
	set.Flags().Float64Var(&setWB, "wb", 0, "white balance correction")
	set.Flags().Float64Var(&setTint, "tint", 0, "tint correction")
	profile.AddCommand(set)

	var prevColor, prevTemp string
	var prevWB, prevTint float64
	preview := &cobra.Command{
		Use:   "preview",
		Short: "Compute the display color for a correction without saving",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.Preview(context.Background(), profiledto.PreviewInput{
				TestColor:    prevColor,
				Temperature:  prevTemp,
				WhiteBalance: prevWB,
				Tint:         prevTint,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\trgb(%d, %d, %d)\n", out.Hex, out.R, out.G, out.B)
			return nil
		},
	}
	preview.Flags().StringVar(&prevColor, "color", "gray", "test color: black|dark gray|gray|light gray|white")
	preview.Flags().StringVar(&prevTemp, "temp", "NA", "color temperature in Kelvin, or NA")
	preview.Flags().Float64Var(&prevWB, "wb", 0, "white balance correction")
	preview.Flags().Float64Var(&prevTint, "tint", 0, "tint correction")
	profile.AddCommand(preview)

	profile.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all indexed profiles across settings files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			rows, err := app.ProfileCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "index is empty; run cctune reindex")
				return nil
			}
			for _, r := range rows {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s K\twb=%+.1f\ttint=%+.1f\n", r.FilePath, r.Name, r.Temperature, r.WhiteBalance, r.Tint)
			}
			return nil
		},
	})

	return profile
}

func newReindexCmd(workDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite profile index from the settings files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workDir)
			if err != nil {
				return err
			}
			if err := app.ProfileCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}
