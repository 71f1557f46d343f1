package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nbshop/dumpmigrate/internal/config"
	"github.com/nbshop/dumpmigrate/internal/etl"
	"github.com/nbshop/dumpmigrate/pkg/database"
	"github.com/nbshop/dumpmigrate/pkg/logger"
)

func runMigration(ctx context.Context, opts *MigrateOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	clientPath := resolvePath(opts.ClientSQL, cfg.DumpDir, DefaultClientDump)
	productPath := resolvePath(opts.ProductSQL, cfg.DumpDir, DefaultProductDump)
	recordsPath := resolvePath(opts.RecordsSQL, cfg.DumpDir, DefaultRecordsDump)

	// All three files must be readable before anything is written.
	dumps, err := readDumps(clientPath, productPath, recordsPath)
	if err != nil {
		return err
	}

	mongoClient, err := database.ConnectMongo(cfg.MongoConnString)
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(context.Background())

	store := etl.NewMongoStore(mongoClient, cfg.MongoDatabase)

	if opts.Reset {
		for _, coll := range etl.Collections {
			deleted, err := etl.ClearCollection(ctx, store, coll, opts.BatchSize)
			if err != nil {
				return err
			}
			logger.Infof("[%s] deleted %d documents", coll, deleted)
		}
	}

	migration := etl.NewMigration(etl.NewBatchWriter(store, opts.BatchSize))
	if err := migration.Run(ctx, dumps); err != nil {
		return err
	}

	logger.Info("Migration completed successfully.")
	return nil
}

func runClear(ctx context.Context, collection string, pageSize int) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	mongoClient, err := database.ConnectMongo(cfg.MongoConnString)
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(context.Background())

	store := etl.NewMongoStore(mongoClient, cfg.MongoDatabase)
	deleted, err := etl.ClearCollection(ctx, store, collection, pageSize)
	if err != nil {
		return err
	}
	logger.Infof("[%s] deleted %d documents", collection, deleted)
	return nil
}

func resolvePath(flagValue, dumpDir, defaultName string) string {
	if flagValue != "" {
		return flagValue
	}
	return filepath.Join(dumpDir, defaultName)
}

func readDumps(clientPath, productPath, recordsPath string) (etl.Dumps, error) {
	clientText, err := os.ReadFile(clientPath)
	if err != nil {
		return etl.Dumps{}, fmt.Errorf("failed to read client dump: %w", err)
	}
	productText, err := os.ReadFile(productPath)
	if err != nil {
		return etl.Dumps{}, fmt.Errorf("failed to read product dump: %w", err)
	}
	recordsText, err := os.ReadFile(recordsPath)
	if err != nil {
		return etl.Dumps{}, fmt.Errorf("failed to read purchase record dump: %w", err)
	}
	return etl.Dumps{
		Client:         string(clientText),
		Product:        string(productText),
		PurchaseRecord: string(recordsText),
	}, nil
}
