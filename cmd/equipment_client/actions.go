package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kurochkinivan/equipment_reporter/internal/client"
	"github.com/kurochkinivan/equipment_reporter/internal/dashboard"
	"github.com/urfave/cli/v3"
)

// dashboardAction renders both sections even if one of the calls fails.
func dashboardAction(ctx context.Context, cmd *cli.Command, c *client.Client) error {
	w := cmd.Root().Writer

	var errs []error

	fmt.Fprintln(w, "== Latest dataset ==")
	dataset, err := c.LatestDataset(ctx)
	switch {
	case errors.Is(err, client.ErrNoData):
		fmt.Fprintln(w, "No data uploaded yet.")
	case err != nil:
		fmt.Fprintf(w, "Failed to load latest dataset: %s\n", describe(err))
		errs = append(errs, err)
	default:
		if err := dashboard.WriteView(w, dashboard.Render(dataset.Summary)); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "== History ==")
	datasets, err := c.History(ctx)
	if err != nil {
		fmt.Fprintf(w, "Failed to load history: %s\n", describe(err))
		errs = append(errs, err)
	} else if err := dashboard.WriteHistory(w, dashboard.HistoryRows(datasets)); err != nil {
		return err
	}

	return errors.Join(errs...)
}

func historyAction(ctx context.Context, cmd *cli.Command, c *client.Client) error {
	datasets, err := c.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %s", describe(err))
	}

	rows := dashboard.HistoryRows(datasets)
	if cmd.String("format") == formatCSV {
		return dashboard.WriteHistoryCSV(cmd.Root().Writer, rows)
	}

	return dashboard.WriteHistory(cmd.Root().Writer, rows)
}

func uploadAction(ctx context.Context, cmd *cli.Command, c *client.Client) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("missing FILE argument")
	}

	dataset, err := c.Upload(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to upload %q: %s", path, describe(err))
	}

	fmt.Fprintf(cmd.Root().Writer, "Uploaded dataset %d\n", dataset.ID)
	if dataset.Summary == nil {
		fmt.Fprintln(cmd.Root().Writer, "The file could not be summarized.")
		return nil
	}

	return dashboard.WriteView(cmd.Root().Writer, dashboard.Render(dataset.Summary))
}

func exportAction(ctx context.Context, cmd *cli.Command, c *client.Client) error {
	tmp, err := os.CreateTemp(".", ".report-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	filename, err := c.DownloadReport(ctx, tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to export report: %s", describe(err))
	}

	out := cmd.String("out")
	if out == "" {
		out = filename
	}

	if err := os.Rename(tmp.Name(), out); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Report saved to %s\n", out)

	return nil
}

// describe turns client errors into messages for the terminal.
func describe(err error) string {
	var unreachable *client.UnreachableError
	if errors.As(err, &unreachable) {
		return fmt.Sprintf("could not connect to server at %s, is it running?", unreachable.Host)
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return err.Error()
}

