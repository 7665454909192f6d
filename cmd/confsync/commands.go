package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trufnetwork/confsync/internal/params"
	"github.com/trufnetwork/confsync/internal/pipeline"
	"github.com/trufnetwork/confsync/internal/publisher"
	"github.com/trufnetwork/confsync/internal/renderer"
	"github.com/trufnetwork/confsync/internal/report"
	"github.com/trufnetwork/confsync/internal/retriever"
	"github.com/trufnetwork/confsync/internal/scanner"
)

func (c *cli) runPipeline(cmd *cobra.Command, _ []string) error {
	replacements, err := c.replacements()
	if err != nil {
		return err
	}
	paramStore, err := c.store()
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), pipeline.Options{
		Store:        paramStore,
		Settings:     c.settings,
		Replacements: replacements,
	})
	if err != nil {
		return err
	}

	return printSummary(cmd, report.NewSummary(replacements, result.Retrieval, result.Render))
}

func (c *cli) runRetrieve(cmd *cobra.Command, _ []string) error {
	replacements, err := c.replacements()
	if err != nil {
		return err
	}
	paramStore, err := c.store()
	if err != nil {
		return err
	}

	result, err := retriever.Retrieve(cmd.Context(), pipeline.RetrieverOptions(pipeline.Options{
		Store:        paramStore,
		Settings:     c.settings,
		Replacements: replacements,
	}))
	if err != nil {
		return err
	}

	return printSummary(cmd, report.NewSummary(replacements, &result, nil))
}

func (c *cli) runRender(cmd *cobra.Command, _ []string) error {
	replacements, err := c.replacements()
	if err != nil {
		return err
	}

	result, err := renderer.Render(cmd.Context(), pipeline.RendererOptions(c.settings))
	if err != nil {
		return err
	}

	return printSummary(cmd, report.NewSummary(replacements, nil, &result))
}

func (c *cli) runPublish(cmd *cobra.Command, _ []string) error {
	paramStore, err := c.store()
	if err != nil {
		return err
	}

	result, err := publisher.Publish(cmd.Context(), publisher.Options{
		Store:         paramStore,
		VariablesPath: c.settings.VariablesPath,
		Concurrency:   c.settings.PublishConcurrency,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "published %d parameters, %d failed\n", len(result.Published), len(result.Failed))
	return err
}

func (c *cli) runScan(cmd *cobra.Command, _ []string) error {
	replacements, err := c.replacements()
	if err != nil {
		return err
	}

	result, err := scanner.Scan(cmd.Context(), scanner.Options{
		Replacements:  replacements,
		TemplateGlob:  c.settings.TemplateGlob,
		VariablesPath: c.settings.VariablesPath,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "found %d tokens, %d new, %d tracked in %s\n",
		len(result.Matches), result.Added, len(result.Records), c.settings.VariablesPath)
	return nil
}

func (c *cli) runPaths(cmd *cobra.Command, _ []string) error {
	replacements, err := c.replacements()
	if err != nil {
		return err
	}

	for _, p := range params.BuildPaths(replacements) {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

func printSummary(cmd *cobra.Command, summary report.Summary) error {
	out, err := report.RenderSummary(summary)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
