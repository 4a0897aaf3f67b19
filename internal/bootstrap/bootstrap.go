package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	calibrationinadapter "cctune/internal/modules/calibration/adapter/in"
	calibrationoutadapter "cctune/internal/modules/calibration/adapter/out"
	calibrationin "cctune/internal/modules/calibration/port/in"
	calibrationservice "cctune/internal/modules/calibration/service"
	calibrationusecase "cctune/internal/modules/calibration/usecase"
	profileinadapter "cctune/internal/modules/profile/adapter/in"
	profileoutadapter "cctune/internal/modules/profile/adapter/out"
	profilein "cctune/internal/modules/profile/port/in"
	profileservice "cctune/internal/modules/profile/service"
	profileusecase "cctune/internal/modules/profile/usecase"
	"cctune/internal/platform/clock"
	"cctune/internal/platform/config"
	uiapp "cctune/internal/ui/app"
)

type App struct {
	CalibrationCLI calibrationinadapter.CLIHandler
	ProfileCLI     profileinadapter.CLIHandler

	calibrationUC calibrationin.Usecase
	profileUC     profilein.Usecase
	cfg           config.Config
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	calibrationStore := calibrationoutadapter.NewFileCalibrationStore(cfg.CalibrationPath)
	calibrationUC := calibrationusecase.NewInteractor(
		calibrationservice.NewCalibrationService(calibrationStore),
	)

	profileStore := profileoutadapter.NewFileProfileStore(cfg.ProfilesDir)
	profileProjector, err := profileoutadapter.NewSQLiteProfileProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new profile projector: %w", err)
	}
	profileUC := profileusecase.NewInteractor(
		profileservice.NewProfileService(clk, profileStore, profileProjector, cfg.NeutralKelvin),
		calibrationUC,
	)

	return &App{
		CalibrationCLI: calibrationinadapter.NewCLIHandler(calibrationUC),
		ProfileCLI:     profileinadapter.NewCLIHandler(profileUC),
		calibrationUC:  calibrationUC,
		profileUC:      profileUC,
		cfg:            cfg,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.calibrationUC, app.profileUC, app.cfg.SliderMin, app.cfg.SliderMax)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
