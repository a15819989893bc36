package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/surveygen/internal/progress"
	"github.com/ziadkadry99/surveygen/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the generated pages on a local HTTP server",
	Long: `Serves the output directory over HTTP so the viewers load the same way
they will once published. With --watch, the chosen page set is regenerated
whenever a viewer folder or thumbnail is added or removed.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port for the preview server")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", false, "regenerate pages when the viewers or images directory changes")
	serveCmd.Flags().String("pages", "index", "page set to regenerate on change: index or pages")
	serveCmd.Flags().Bool("cors-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	openBrowser, _ := cmd.Flags().GetBool("open")
	watch, _ := cmd.Flags().GetBool("watch")
	pageSet, _ := cmd.Flags().GetString("pages")
	corsAll, _ := cmd.Flags().GetBool("cors-all")

	var rebuild func() error
	switch pageSet {
	case "index":
		rebuild = func() error {
			res, err := buildIndex(context.Background(), cfg, progress.Nop{})
			if err == nil {
				fmt.Printf("Regenerated %s with %d entries.\n", res.Path, len(res.Entries))
			}
			return err
		}
	case "pages":
		rebuild = func() error {
			res, err := buildPages(cfg, progress.Nop{})
			if err == nil {
				fmt.Printf("Regenerated %d pages.\n", len(res.Paths))
			}
			return err
		}
	default:
		return fmt.Errorf("invalid --pages %q: must be index or pages", pageSet)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		if err := rebuild(); err != nil {
			return err
		}
		go func() {
			dirs := []string{cfg.ViewersDir, cfg.ImagesDir}
			if err := site.Watch(ctx, dirs, 300*time.Millisecond, rebuild); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: watch disabled: %v\n", err)
			}
		}()
	}

	fmt.Printf("Serving %s at http://localhost:%d (Ctrl+C to stop)\n", cfg.OutputDir, port)
	return site.Serve(ctx, site.ServeConfig{
		Dir:      cfg.OutputDir,
		Port:     port,
		Open:     openBrowser,
		AllowAll: corsAll,
	})
}
