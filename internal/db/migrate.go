package db

import (
	"bet_assist/internal/domain" // Importing domain models
	"embed"                      // Embedded stored procedures
	"fmt"                        // Error wrapping
	"path"                       // Procedure file names
	"strings"                    // Procedure names

	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // ON CONFLICT DO NOTHING
)

//go:embed procedures/*.sql
var procedures embed.FS

// DefaultBookmakers are inserted on every migration if missing
var DefaultBookmakers = []string{
	"Bet365",
	"Betfair",
	"Bwin",
	"Eurobet",
	"Goldbet",
	"Pinnacle",
	"Sisal",
	"Snai",
	"William Hill",
}

// Migrate creates the schema, seeds reference data and, on MySQL, installs
// the statistics procedures
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Profile{},
		&domain.Bookmaker{},
		&domain.StakingPlan{},
		&domain.Bet{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := SeedBookmakers(db); err != nil {
		return err
	}
	if db.Dialector.Name() != "mysql" {
		logrus.WithField("dialect", db.Dialector.Name()).Warn("Skipping stored procedures")
		return nil
	}
	if err := InstallProcedures(db); err != nil {
		return err
	}
	logrus.Info("Migration completed.")
	return nil
}

// SeedBookmakers inserts DefaultBookmakers, leaving existing rows alone
func SeedBookmakers(db *gorm.DB) error {
	rows := make([]domain.Bookmaker, len(DefaultBookmakers))
	for i, name := range DefaultBookmakers {
		rows[i] = domain.Bookmaker{Name: name}
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("seed bookmakers: %w", res.Error)
	}
	logrus.WithField("inserted", res.RowsAffected).Info("Bookmakers seeded")
	return nil
}

// InstallProcedures drops and recreates every embedded stored procedure
func InstallProcedures(db *gorm.DB) error {
	files, err := procedures.ReadDir("procedures")
	if err != nil {
		return fmt.Errorf("read procedures: %w", err)
	}
	for _, f := range files {
		name := strings.TrimSuffix(f.Name(), path.Ext(f.Name())) // File name is the procedure name
		body, err := procedures.ReadFile("procedures/" + f.Name())
		if err != nil {
			return fmt.Errorf("read procedure %s: %w", name, err)
		}
		if err := db.Exec("DROP PROCEDURE IF EXISTS " + name).Error; err != nil {
			return fmt.Errorf("drop procedure %s: %w", name, err)
		}
		if err := db.Exec(string(body)).Error; err != nil {
			return fmt.Errorf("create procedure %s: %w", name, err)
		}
		logrus.WithField("procedure", name).Info("Stored procedure installed")
	}
	return nil
}
