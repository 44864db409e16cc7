// seed_locations genera el script SQL que puebla los catálogos de estados, municipios
// y colonias a partir del Catálogo Nacional de Códigos Postales (CPdescarga.txt).
//
// Uso: go run ./cmd/seed_locations -i CPdescarga.txt -o migrations/002_seed_locations.sql
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Ventanilla-api/internal/infrastructure/sepomex"
	"github.com/jhoicas/Ventanilla-api/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var inPath, outPath string
	cmd := &cobra.Command{
		Use:   "seed_locations",
		Short: "Genera el SQL de estados, municipios y colonias desde el catálogo de códigos postales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outPath == "" {
				outPath = filepath.Join(findModuleRoot(), "migrations", "002_seed_locations.sql")
			}
			return run(inPath, outPath)
		},
	}
	cmd.Flags().StringVarP(&inPath, "input", "i", "CPdescarga.txt", "archivo del catálogo (ISO-8859-1, separado por '|')")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "script SQL de salida (por defecto migrations/002_seed_locations.sql)")
	return cmd
}

func run(inPath, outPath string) error {
	log := logger.New(logger.Config{Env: "development", Level: "info"})

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()

	catalog, err := sepomex.Parse(bufio.NewReader(f))
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := catalog.WriteSQL(w); err != nil {
		return fmt.Errorf("escribir SQL: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("escribir SQL: %w", err)
	}

	log.Info().
		Str("path", outPath).
		Int("states", len(catalog.States)).
		Int("municipalities", len(catalog.Municipalities)).
		Int("neighborhoods", len(catalog.Neighborhoods)).
		Msg("catálogo generado")
	return nil
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
