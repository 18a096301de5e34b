// Command yieldtoken-cli is a one-shot JSON printer against a running
// yieldtokend instance.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	var (
		baseURL string
		pretty  bool
	)

	root := &cobra.Command{
		Use:   "yieldtoken-cli",
		Short: "Query a yieldtokend instance and print JSON",
	}
	root.PersistentFlags().StringVar(&baseURL, "url", envOr("YIELDTOKEN_URL", "http://localhost:8080"), "yieldtokend base URL")
	root.PersistentFlags().BoolVar(&pretty, "pretty", true, "pretty-print JSON output")

	root.AddCommand(&cobra.Command{
		Use:   "index",
		Short: "Print the current continuous index and rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchAndPrint(baseURL+"/index", pretty)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "supply",
		Short: "Print the total, earning, and non-earning supply",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchAndPrint(baseURL+"/supply", pretty)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "account [address]",
		Short: "Print an account's balance and earning status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchAndPrint(baseURL+"/account/"+args[0], pretty)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fetchAndPrint(url string, pretty bool) error {
	client := &http.Client{Timeout: 8 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s: status %d: %s", url, resp.StatusCode, string(body))
	}

	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
