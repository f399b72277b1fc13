package main

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"

	"github.com/jekabolt/retail-stats/config"
	"github.com/jekabolt/retail-stats/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("cannot load a config %v", err.Error())
		}

		db, err := sql.Open("mysql", cfg.DB.DSN)
		if err != nil {
			return fmt.Errorf("couldn't open database: %w", err)
		}
		defer db.Close()

		return store.Migrate(db)
	},
}
