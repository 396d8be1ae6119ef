package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atelier/internal/ui/tokens"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "atelier",
		Short:         "Inspect the Atelier de Travail design tokens and component classes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registry := tokens.Atelier()
	cmd.AddCommand(newTokensCmd(registry))
	cmd.AddCommand(newClassesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
