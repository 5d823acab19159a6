// One-off backfill for wanted.scale.
//
// Older rows were created before scale became required and carry a
// NULL there. This fills them with the N gauge default, but refuses to
// touch anything when an unknown scale value is found in the table.
//
// Usage: go run scripts/fix_wanted_scale.go
//
// Exit codes: 0 on success, 2 when invalid scale values block the
// backfill, 1 on any other failure.

package main

import (
	"errors"
	"log"
	"os"

	"railcollect_backend/internal/config"
	"railcollect_backend/internal/service"
	"railcollect_backend/internal/util"
	"railcollect_backend/pkg/database"
	"railcollect_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	maintenance := service.NewMaintenanceService(db)

	count, err := maintenance.BackfillWantedScale()
	if err != nil {
		if errors.Is(err, util.ErrInvalidScaleData) {
			log.Printf("aborting: %v", err)
			os.Exit(2)
		}
		log.Printf("backfill failed: %v", err)
		os.Exit(1)
	}

	log.Printf("backfilled %d wanted rows to scale N", count)
}
