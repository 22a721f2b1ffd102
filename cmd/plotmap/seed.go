package main

import (
	"github.com/spf13/cobra"

	"github.com/AliHaider728/royal-palm-map-clone/internal/app"
	"github.com/AliHaider728/royal-palm-map-clone/internal/config"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo superadmin, dealers, packages and listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		application, err := app.NewApp(ctx, config.LoadDBUrl())
		if err != nil {
			return err
		}
		defer application.Close()

		if err := app.Migrate(ctx, application.DB); err != nil {
			return err
		}
		if err := app.SeedAllTestData(ctx, app.NewRepos(application.DB)); err != nil {
			utils.Logger.WithError(err).Error("Seeding failed")
			return err
		}
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(cmd.Context(), config.LoadDBUrl())
		if err != nil {
			return err
		}
		defer application.Close()
		return app.Migrate(cmd.Context(), application.DB)
	},
}
