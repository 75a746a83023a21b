package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quill/quill"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Compile and execute a quill script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	cmd.Flags().String("config", "", "path to a quill.toml config file (default: quill.toml next to the script)")
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	source, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if configPath == "" {
		configPath = filepath.Join(filepath.Dir(scriptPath), "quill.toml")
	}
	cfg, err := quill.LoadConfigFile(configPath)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("warning: %v (using defaults)", err))
		cfg = quill.Config{}
	}

	engine := quill.NewEngine(cfg)
	script, err := engine.Compile(string(source))
	if err != nil {
		return reportError(string(source), err)
	}
	if err := script.Run(context.Background(), cmd.OutOrStdout()); err != nil {
		return reportError(string(source), err)
	}
	return nil
}

// reportError formats a RuntimeError with a code-frame excerpt when the
// error carries a source position, falling back to plain text otherwise,
// and returns it for main to print.
func reportError(source string, err error) error {
	rtErr, ok := err.(*quill.RuntimeError)
	if !ok {
		return err
	}
	frame := quill.FormatCodeFrame(source, rtErr.Pos)
	if frame == "" {
		return fmt.Errorf("%s: %s", rtErr.Kind, rtErr.Message)
	}
	return fmt.Errorf("%s: %s\n%s", color.RedString(rtErr.Kind), rtErr.Message, frame)
}
