// Command seed carga un catálogo de medicamentos (JSON) en una API en ejecución.
// Si el medicamento ya existe lo reemplaza con PUT, así no duplica su nombre en la lista.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"med-catalog/internal/platform/httpclient"
	"med-catalog/internal/platform/logger"

	"github.com/spf13/cobra"
)

type seedMedication struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Via    string `json:"via"`
	Adult  string `json:"adult"`
	Ped    string `json:"ped"`
	GPO90  string `json:"gpo90"`
}

type result struct {
	Created int
	Updated int
}

var (
	apiURL  string
	file    string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga un catálogo de medicamentos en la API",
	Long: `Lee un archivo JSON con un array de medicamentos y los registra en la API.

Los existentes se reemplazan con PUT; los nuevos se crean con POST.

Ejemplo:
  seed --api http://localhost:3000 --file medications.json`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api", envOr("API_URL", "http://localhost:3000"), "base URL de la API")
	rootCmd.Flags().StringVar(&file, "file", "medications.json", "archivo JSON con un array de medicamentos")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "timeout por request")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	lg := logger.NewFromEnv()

	meds, err := readCatalog(file)
	if err != nil {
		lg.Error("read catalog", map[string]any{"file": file, "error": err})
		return err
	}

	c, err := httpclient.NewWithBaseURL(apiURL, timeout)
	if err != nil {
		lg.Error("invalid api url", map[string]any{"api": apiURL, "error": err})
		return err
	}

	res, err := run(cmd.Context(), c, meds, lg)
	if err != nil {
		lg.Error("seed failed", map[string]any{"error": err, "created": res.Created, "updated": res.Updated})
		return err
	}
	lg.Info("seed done", map[string]any{"created": res.Created, "updated": res.Updated})
	return nil
}

func readCatalog(path string) ([]seedMedication, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var meds []seedMedication
	if err := json.Unmarshal(b, &meds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return meds, nil
}

func run(ctx context.Context, c *httpclient.Client, meds []seedMedication, lg logger.Logger) (result, error) {
	var res result

	for _, m := range meds {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			lg.Warn("skipping medication without name", nil)
			continue
		}
		m.Name = name
		path := "/med/" + url.PathEscape(name)

		var current map[string]string
		err := c.GetJSON(ctx, path, &current)
		switch {
		case err == nil:
			if _, err := c.SendJSON(ctx, http.MethodPut, path, m); err != nil {
				return res, fmt.Errorf("update %q: %w", name, err)
			}
			res.Updated++
		case httpclient.IsStatus(err, http.StatusNotFound):
			if _, err := c.SendJSON(ctx, http.MethodPost, "/med", m); err != nil {
				return res, fmt.Errorf("create %q: %w", name, err)
			}
			res.Created++
		default:
			return res, fmt.Errorf("lookup %q: %w", name, err)
		}

		lg.Debug("seeded", map[string]any{"name": name})
	}
	return res, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
