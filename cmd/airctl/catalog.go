package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"airscore-backend/internal/catalog"
	"airscore-backend/internal/shared/config"
	"airscore-backend/internal/shared/storage/db"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	catalogOut    string
	catalogFromDB bool
	catalogIn     string
)

//nolint:gochecknoglobals // Cobra boilerplate
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Export, validate, and import the reference catalog",
}

//nolint:gochecknoglobals // Cobra boilerplate
var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as a YAML document",
	Long: `Writes the built-in catalog (or, with --from-db, the Postgres catalog)
in the document format read by CATALOG_SOURCE=document.

Examples:
  airctl catalog export --out data/reference/catalog.yaml
  DATABASE_URL=postgres://... airctl catalog export --from-db`,
	RunE: runCatalogExport,
}

//nolint:gochecknoglobals // Cobra boilerplate
var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a catalog document for structural errors",
	RunE:  runCatalogValidate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the Postgres catalog with a YAML document",
	RunE:  runCatalogImport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogExportCmd, catalogValidateCmd, catalogImportCmd)

	catalogExportCmd.Flags().StringVar(&catalogOut, "out", "", "Output file (default is stdout)")
	catalogExportCmd.Flags().BoolVar(&catalogFromDB, "from-db", false, "Export the catalog stored in DATABASE_URL")
	catalogValidateCmd.Flags().StringVar(&catalogIn, "file", "", "Catalog document to validate")
	catalogImportCmd.Flags().StringVar(&catalogIn, "file", "", "Catalog document to import")
}

func runCatalogExport(cmd *cobra.Command, args []string) (err error) {
	ctx := commandContext()

	var source catalog.Catalog
	if catalogFromDB {
		var sqlDB *sql.DB
		sqlDB, err = connectDB(ctx)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		source = &catalog.PGRepo{DB: sqlDB}
	} else {
		source, err = loadCatalog()
		if err != nil {
			return err
		}
	}

	doc, err := catalog.Export(ctx, source)
	if err != nil {
		err = errors.Wrap(err, "failed to export catalog")
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if catalogOut != "" {
		var f *os.File
		f, err = os.Create(catalogOut)
		if err != nil {
			err = errors.Wrap(err, "failed to create output file")
			return err
		}
		defer f.Close()
		w = f
	}

	err = catalog.EncodeDocument(w, doc)
	if err != nil {
		err = errors.Wrap(err, "failed to write catalog document")
		return err
	}
	if verbose && catalogOut != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d occupations and %d pathways to %s\n", len(doc.Occupations), len(doc.Pathways), catalogOut)
	}
	return err
}

func runCatalogValidate(cmd *cobra.Command, args []string) (err error) {
	doc, err := readDocument(catalogIn)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d occupations, %d required skills, %d pathways\n",
		len(doc.Occupations), len(doc.RequiredSkills), len(doc.Pathways))
	return err
}

func runCatalogImport(cmd *cobra.Command, args []string) (err error) {
	doc, err := readDocument(catalogIn)
	if err != nil {
		return err
	}

	ctx := commandContext()
	sqlDB, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	repo := &catalog.PGRepo{DB: sqlDB}
	err = repo.Import(ctx, doc)
	if err != nil {
		err = errors.Wrap(err, "failed to import catalog")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d occupations and %d pathways\n", len(doc.Occupations), len(doc.Pathways))
	return err
}

// readDocument decodes and validates the document at path.
func readDocument(path string) (doc catalog.Document, err error) {
	if path == "" {
		err = errors.New("--file is required")
		return doc, err
	}
	var f *os.File
	f, err = os.Open(path)
	if err != nil {
		err = errors.Wrap(err, "failed to open catalog document")
		return doc, err
	}
	defer f.Close()

	doc, err = catalog.DecodeDocument(f)
	if err != nil {
		err = errors.Wrapf(err, "invalid catalog document %s", path)
		return doc, err
	}
	return doc, err
}

func connectDB(ctx context.Context) (sqlDB *sql.DB, err error) {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		err = errors.New("DATABASE_URL is required")
		return sqlDB, err
	}
	sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		err = errors.Wrap(err, "failed to connect database")
		return sqlDB, err
	}
	return sqlDB, err
}
