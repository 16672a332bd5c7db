package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func BuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build release binaries into bin/",
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildAll()
		},
	}
}

func buildAll() error {
	targets := []struct {
		out string
		pkg string
	}{
		{"bin/server", "./cmd/server"},
		{"bin/mediasync", "./cmd/mediasync"},
	}

	for _, t := range targets {
		fmt.Printf("==> Building %s...\n", t.out)
		if err := run("go", "build", "-o", t.out, t.pkg); err != nil {
			return fmt.Errorf("build %s failed: %w", t.out, err)
		}
	}

	fmt.Println("==> Done")
	return nil
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
