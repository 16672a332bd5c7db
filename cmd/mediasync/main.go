package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/service"
)

func main() {
	if err := syncCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func syncCmd() *cobra.Command {
	var (
		contentDir string
		outDir     string
		delay      time.Duration
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "mediasync",
		Short: "Download the media files listed in the export manifest",
		Long: `Mediasync mirrors the WordPress uploads referenced by the media
manifest into the local images directory. Files already on disk are
skipped, so an interrupted run can simply be restarted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(contentDir, outDir, delay, timeout)
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "content", "content directory holding the media manifest")
	cmd.Flags().StringVar(&outDir, "out", filepath.Join("public", "images", "uploads"), "directory to download into")
	cmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "pause between downloads")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-file download timeout")

	return cmd
}

func runSync(contentDir, outDir string, delay, timeout time.Duration) error {
	media := service.NewMediaService(export.NewDiskStore(contentDir))

	manifest, err := media.Manifest()
	if err != nil {
		return fmt.Errorf("load media manifest: %w", err)
	}
	fmt.Printf("%d media items in manifest\n", len(manifest))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	total := len(manifest)
	var downloaded, skipped, failed int

	for i, item := range manifest {
		rel := service.LocalPath(item)
		if item.URL == "" || rel == "" {
			skipped++
			continue
		}

		target := filepath.Join(outDir, filepath.FromSlash(rel))
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("[%d/%d] exists: %s\n", i+1, total, rel)
			skipped++
			continue
		}

		fmt.Printf("[%d/%d] downloading: %s\n", i+1, total, item.URL)
		if err := download(client, item.URL, target); err != nil {
			fmt.Printf("  failed: %v\n", err)
			failed++
		} else {
			downloaded++
		}

		// The origin is someone else's production server, pace the requests
		time.Sleep(delay)
	}

	fmt.Printf("\ndownloaded %d, skipped %d, failed %d (of %d)\n", downloaded, skipped, failed, total)
	if failed > 0 {
		fmt.Println("Some files could not be fetched, the original site may no longer serve them.")
	}
	return nil
}

func download(client *http.Client, rawURL, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; MediaSync/1.0)")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http %d", resp.StatusCode)
	}

	// Download to a partial file first so an aborted transfer is never
	// mistaken for a finished one on the next run.
	part := target + ".part"
	f, err := os.Create(part)
	if err != nil {
		return err
	}

	_, err = io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(part)
		return err
	}

	return os.Rename(part, target)
}
