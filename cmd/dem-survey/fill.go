package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jateonwr/dem-survey/internal/config"
	"github.com/jateonwr/dem-survey/pkg/contract"
	"github.com/jateonwr/dem-survey/pkg/form"
	"github.com/jateonwr/dem-survey/pkg/model"
	"github.com/jateonwr/dem-survey/pkg/remote"
	"github.com/jateonwr/dem-survey/pkg/render"
	"github.com/jateonwr/dem-survey/pkg/renderers/tui"
)

func newFillCommand(env *environment) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill the survey interactively and submit it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.Config()
			if err != nil {
				return err
			}
			logger := env.Logger()
			defer func() { _ = logger.Sync() }()

			client, err := remote.New(cfg.Endpoint, remote.WithTimeout(cfg.Timeout()), remote.WithLogger(logger))
			if err != nil {
				return err
			}
			var target form.Remote = client
			if dryRun {
				target = &printingRemote{Remote: client, out: cmd.OutOrStdout()}
			}

			session := tui.NewSession(
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithTheme(colorTheme()),
				tui.WithLogger(logger),
			)
			f, err := buildForm(cmd.Context(), cfg, logger, target, session)
			if err != nil {
				return err
			}

			err = session.Run(cmd.Context(), f)
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the payload instead of sending it")
	return cmd
}

// buildForm wires the engine with the compiled rules, the contract checker
// and the pill renderer. The session serves as modal host and alert box.
func buildForm(ctx context.Context, cfg config.Config, logger *zap.Logger, target form.Remote, session *tui.Session) (*form.Form, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	api, err := contract.Load(ctx)
	if err != nil {
		return nil, err
	}
	pills, err := render.New()
	if err != nil {
		return nil, err
	}
	return form.New(
		form.WithLogger(logger),
		form.WithToggleRules(rules),
		form.WithRequiredAgencyIDs(cfg.RequiredAgencyIDs),
		form.WithYearRange(cfg.YearStart, cfg.YearEnd),
		form.WithRemote(target),
		form.WithPayloadChecker(api),
		form.WithModals(session),
		form.WithAlerter(session),
		form.WithPillRenderer(pills),
	), nil
}

func colorTheme() tui.Theme {
	return tui.Theme{
		InfoPrefix:    color.CyanString("› "),
		ErrorPrefix:   color.RedString("✗ "),
		SuccessPrefix: color.GreenString("✓ "),
	}
}

// printingRemote fetches reference data from the wrapped remote but prints
// submissions instead of sending them.
type printingRemote struct {
	form.Remote
	out io.Writer
}

func (p *printingRemote) Submit(_ context.Context, payload model.Payload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}
